package api

import (
	"cardapio-be/internal/business"
	"cardapio-be/internal/category"
	"cardapio-be/internal/transport"

	"github.com/gin-gonic/gin"
)

/* ---------- BUSINESS ---------- */

// GET /dashboard/business
func (h *Handler) GetMyBusiness(c *gin.Context) {
	transport.OK(c, toBusinessView(currentBusiness(c)))
}

// POST /dashboard/business
func (h *Handler) CreateBusiness(c *gin.Context) {
	var req BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	b, err := h.BusinessSvc.Create(c.Request.Context(), req.toCreate(currentUserID(c)))
	if err != nil {
		respondError(c, err)
		return
	}
	transport.Created(c, "Negócio cadastrado com sucesso!", toBusinessView(b))
}

// PATCH /dashboard/business
func (h *Handler) UpdateBusiness(c *gin.Context) {
	var req BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	b, err := h.BusinessSvc.Update(c.Request.Context(), req.toUpdate(currentBusiness(c)))
	if err != nil {
		respondError(c, err)
		return
	}
	transport.Success(c, "Dados atualizados!", toBusinessView(b))
}

// GET /dashboard/plan
func (h *Handler) GetPlan(c *gin.Context) {
	b := currentBusiness(c)

	products, err := h.ProductSvc.List(c.Request.Context(), b.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	transport.OK(c, PlanResponse{
		Current:      b.Plan.Info(),
		ProductCount: len(products),
		Plans:        business.Plans(),
	})
}

/* ---------- CATEGORIES ---------- */

// GET /dashboard/categories
func (h *Handler) ListCategories(c *gin.Context) {
	list, err := h.CategorySvc.List(c.Request.Context(), currentBusiness(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	transport.OK(c, list)
}

// POST /dashboard/categories
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cat, err := h.CategorySvc.Create(c.Request.Context(), category.CreateCategoryParams{
		BusinessID: currentBusiness(c).ID,
		Name:       deref(req.Name),
		Emoji:      deref(req.Emoji),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	transport.Created(c, "Categoria criada!", cat)
}

// PATCH /dashboard/categories/:id
func (h *Handler) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cat, err := h.CategorySvc.Update(c.Request.Context(), category.UpdateCategoryParams{
		ID:         c.Param("id"),
		BusinessID: currentBusiness(c).ID,
		Name:       req.Name,
		Emoji:      req.Emoji,
		IsActive:   req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	transport.Success(c, "Categoria atualizada!", cat)
}

// DELETE /dashboard/categories/:id
func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.CategorySvc.Delete(c.Request.Context(), currentBusiness(c).ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	transport.Success(c, "Categoria excluída!", nil)
}

// POST /dashboard/categories/:id/move
func (h *Handler) MoveCategory(c *gin.Context) {
	var req MoveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	list, err := h.CategorySvc.Reorder(c.Request.Context(), category.MoveParams{
		BusinessID: currentBusiness(c).ID,
		ID:         c.Param("id"),
		RefID:      req.RefID,
		Placement:  req.Placement,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	transport.Success(c, "Ordem atualizada!", list)
}

/* ---------- PRODUCTS ---------- */

// GET /dashboard/products
func (h *Handler) ListProducts(c *gin.Context) {
	list, err := h.ProductSvc.List(c.Request.Context(), currentBusiness(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	transport.OK(c, list)
}

// POST /dashboard/products
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.ProductSvc.Create(c.Request.Context(), req.toCreate(currentBusiness(c).ID))
	if err != nil {
		respondError(c, err)
		return
	}
	transport.Created(c, "Produto criado!", p)
}

// PATCH /dashboard/products/:id
func (h *Handler) UpdateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.ProductSvc.Update(c.Request.Context(), req.toUpdate(currentBusiness(c).ID, c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	transport.Success(c, "Produto atualizado!", p)
}

// DELETE /dashboard/products/:id
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.ProductSvc.Delete(c.Request.Context(), currentBusiness(c).ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	transport.Success(c, "Produto excluído!", nil)
}
