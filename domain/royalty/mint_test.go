package royalty

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckMintResultDecode(t *testing.T) {
	body := `[
		{"mint":"M1","status":"NotPaid","metadata":{"name":"Scalp #1","image":"i","creators":[{"address":"C","verified":1,"share":100}],"royalties":500,"rank":7,"isListed":false},
		 "sale":{"transaction":"S1","timestamp":1672531200,"price":1500000000,"royalties":500}},
		{"mint":"M2","status":"Frozen"}
	]`
	var res []CheckMintResult
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	require.Len(t, res, 2)

	assert.Equal(t, Mint("M1"), res[0].Mint)
	assert.Equal(t, "Scalp #1", res[0].DisplayName())
	assert.Equal(t, uint64(1500000000), res[0].Sale.Price)
	assert.Nil(t, res[0].Sale.Proof)
	assert.True(t, res[0].Payable())

	assert.Equal(t, RoyaltyStatusUnknown, res[1].Status)
	assert.Equal(t, "M2", res[1].DisplayName())
	assert.False(t, res[1].Payable())
}

func TestPayable(t *testing.T) {
	sale := &MintSale{Transaction: "S"}
	assert.True(t, CheckMintResult{Sale: sale, Status: RoyaltyStatusPaidPartial}.Payable())
	assert.False(t, CheckMintResult{Sale: sale, Status: RoyaltyStatusPaidFull}.Payable())
	assert.False(t, CheckMintResult{Sale: sale, Status: RoyaltyStatusExempted}.Payable())
	assert.False(t, CheckMintResult{Status: RoyaltyStatusNotPaid}.Payable())

	rec := Reconciliation{Results: []CheckMintResult{
		{Mint: "A", Sale: sale, Status: RoyaltyStatusNotPaid},
		{Mint: "B", Sale: sale, Status: RoyaltyStatusPaidFull},
	}}
	payable := rec.Payable()
	require.Len(t, payable, 1)
	assert.Equal(t, Mint("A"), payable[0].Mint)
}

func TestPaymentStateAccepting(t *testing.T) {
	for _, s := range []PaymentState{PaymentStateIdle, PaymentStateConfirmed, PaymentStateFailed} {
		assert.True(t, s.Accepting(), s.String())
	}
	for _, s := range []PaymentState{PaymentStateCheckingSale, PaymentStateGeneratingTransaction, PaymentStateAwaitingSignature, PaymentStateSubmitting} {
		assert.False(t, s.Accepting(), s.String())
	}
}
