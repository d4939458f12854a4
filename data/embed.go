package data

import (
	_ "embed"
)

// SeedJSON holds the starter users, stores, warehouses and products loaded by `marketdb seed`.
//
//go:embed seed.json
var SeedJSON []byte
