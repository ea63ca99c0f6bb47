package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopledger/shopledger/internal/core/domain"
)

func TestAccountGroupCode(t *testing.T) {
	tests := []struct {
		name        string
		accountType int
		seq         int
		want        string
	}{
		{name: "first group of type 1", accountType: 1, seq: 1, want: "1-01"},
		{name: "second group of type 1", accountType: 1, seq: 2, want: "1-02"},
		{name: "single digit padded", accountType: 3, seq: 9, want: "3-09"},
		{name: "two digit sequence", accountType: 2, seq: 10, want: "2-10"},
		{name: "sequence beyond two digits", accountType: 4, seq: 100, want: "4-100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.AccountGroupCode(tt.accountType, tt.seq))
		})
	}
}

func TestAccountType_IsValid(t *testing.T) {
	assert.True(t, domain.Asset.IsValid())
	assert.True(t, domain.Liability.IsValid())
	assert.True(t, domain.Equity.IsValid())

	// Case matters: only the exact literals are valid.
	assert.False(t, domain.AccountType("asset").IsValid())
	assert.False(t, domain.AccountType("ASSET").IsValid())
	assert.False(t, domain.AccountType("Revenue").IsValid())
	assert.False(t, domain.AccountType("").IsValid())
}

func TestEntryType_IsValid(t *testing.T) {
	assert.True(t, domain.Credit.IsValid())
	assert.True(t, domain.Debit.IsValid())
	assert.False(t, domain.EntryType("credit").IsValid())
	assert.False(t, domain.EntryType("").IsValid())
}
