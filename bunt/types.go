package bunt

import (
	"errors"

	"github.com/tidwall/buntdb"
)

// ErrInvalidTTL return of Set when the given ttl is negative
var ErrInvalidTTL = errors.New("the ttl must not be negative")

// Store bunt store
type Store struct {
	db     *buntdb.DB
	Option Option
}

// Option bunt store option
type Option struct {
	Prefix string
}
