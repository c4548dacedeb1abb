package ident_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dj8yfo/interactive-clap/internal/ident"
)

func TestSplitWords(t *testing.T) {
	for input, want := range map[string][]string{
		"":               nil,
		"age":            {"age"},
		"AGE":            {"AGE"},
		"accountId":      {"account", "Id"},
		"AccountID":      {"Account", "ID"},
		"HTTPPort":       {"HTTP", "Port"},
		"skip_input":     {"skip", "_", "input"},
		"skip__input":    {"skip", "__", "input"},
		"__":             {"__"},
		"ed25519":        {"ed", "25519"},
		"bip32path":      {"bip", "32", "path"},
		"bip32Path":      {"bip", "32", "Path"},
		"Build1":         {"Build", "1"},
		"Fee2X":          {"Fee", "2", "X"},
		"443":            {"443"},
		"LedgerHDPath":   {"Ledger", "HD", "Path"},
		"signWithLedger": {"sign", "With", "Ledger"},
	} {
		assert.Equal(t, want, ident.SplitWords(input), input)
	}
}

func TestKebab(t *testing.T) {
	for input, want := range map[string]string{
		"Age":           "age",
		"AccountId":     "account-id",
		"account_id":    "account-id",
		"accountId":     "account-id",
		"HTTPPort":      "http-port",
		"Bip32Path":     "bip-32-path",
		"_hidden":       "hidden",
		"SignWithPlain": "sign-with-plain",
	} {
		assert.Equal(t, want, ident.Kebab(input), input)
	}
}
