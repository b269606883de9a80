package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddons_ValueScan(t *testing.T) {
	v, err := Addons(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)

	var a Addons
	require.NoError(t, a.Scan([]byte(`[{"group_id":"g-extras","option_id":"bacon","option_name":"Bacon","price":"3.00"}]`)))
	require.Len(t, a, 1)
	assert.Equal(t, "Bacon", a[0].OptionName)
	assert.Equal(t, "3", a[0].Price.String())

	require.NoError(t, a.Scan(nil))
	assert.Empty(t, a)
	assert.Error(t, a.Scan(42))
}

func TestPaymentAndDelivery_Valid(t *testing.T) {
	assert.True(t, PaymentPix.Valid())
	assert.False(t, PaymentMethod("boleto").Valid())
	assert.True(t, DeliveryRetirada.Valid())
	assert.False(t, DeliveryType("drone").Valid())
}
