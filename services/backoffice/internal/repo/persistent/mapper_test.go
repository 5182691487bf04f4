package persistent

import (
	"testing"

	"lv33global/services/backoffice/internal/entity"
	"lv33global/services/backoffice/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeList(t *testing.T) {
	for _, list := range [][]string{{}, {"Visa"}, {"Visa", "Mastercard", "Skrill"}, {"a,b", `quote"d`}} {
		assert.Equal(t, list, decodeList(encodeList(list)))
	}

	assert.Equal(t, "[]", encodeList(nil))
	assert.Equal(t, `["Visa"]`, encodeList([]string{"Visa"}))
}

func TestDecodeList_Defaults(t *testing.T) {
	assert.Equal(t, []string{}, decodeList(""))
	assert.Equal(t, []string{}, decodeList("   "))
	assert.Equal(t, []string{}, decodeList("null"))
	assert.Equal(t, []string{}, decodeList("not json"))
	assert.Equal(t, []string{}, decodeList(`{"a":1}`))
}

func TestDecodeList_UnwrapsDoubleEncoded(t *testing.T) {
	assert.Equal(t, []string{"Visa", "PayPal"}, decodeList(`"[\"Visa\",\"PayPal\"]"`))
	assert.Equal(t, []string{}, decodeList(`"null"`))
}

func TestCasinoMapping_PaymentsNeverNil(t *testing.T) {
	e := ToCasinoEntity(&model.CasinoModel{ID: "c-1"})
	assert.NotNil(t, e.Payments)
	assert.Empty(t, e.Payments)

	m := ToCasinoModel(&entity.Casino{ID: "c-1"})
	assert.Equal(t, "[]", m.Payments)
}

func TestMappers_Nil(t *testing.T) {
	assert.Nil(t, ToPostEntity(nil))
	assert.Nil(t, ToPostModel(nil))
	assert.Nil(t, ToGlobalSlotEntity(nil))
	assert.Nil(t, ToUserModel(nil))
}
