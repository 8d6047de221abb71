package kan

import (
	"io"
	"os"
	"strings"

	"github.com/go-errors/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/yaoapp/kan/bunt"
	"github.com/yaoapp/kan/lru"
	"github.com/yaoapp/kun/exception"
)

// Pools loaded store pools
var Pools = map[string]Store{}

// New create a store of the given driver. The lru driver requires a positive
// size option, the bunt driver accepts an optional prefix. A cleanup option
// wraps the store with a locked one that sweeps expired entries at the given
// interval.
func New(driver string, option Option) (Store, error) {
	var store Store

	switch strings.ToLower(driver) {
	case "lru":
		size := 0
		if v, has := option["size"]; has {
			size = EnvInt(v)
		}
		if size <= 0 {
			return nil, errors.Errorf("the lru driver requires a positive size option")
		}
		cache, err := lru.New(size)
		if err != nil {
			return nil, err
		}
		store = cache

	case "bunt":
		prefix := ""
		if v, has := option["prefix"]; has {
			prefix = EnvString(v)
		}
		cache, err := bunt.New(&bunt.Option{Prefix: prefix})
		if err != nil {
			return nil, err
		}
		store = cache

	default:
		return nil, errors.Errorf("the store driver %s does not support yet", driver)
	}

	if v, has := option["cleanup"]; has {
		if cleanup := EnvDuration(v); cleanup > 0 {
			store = NewSafe(store, cleanup)
		}
	}

	return store, nil
}

// Load load a store from the source and register it under the name. The
// source is either an inline JSON descriptor or a file://path to one.
func Load(source string, name string) (Store, error) {
	var input io.Reader = nil
	if strings.HasPrefix(source, "file://") {
		filename := strings.TrimPrefix(source, "file://")
		file, err := os.Open(filename)
		if err != nil {
			exception.Err(err, 400).Throw()
		}
		defer file.Close()
		input = file
	} else {
		input = strings.NewReader(source)
	}

	data, err := io.ReadAll(input)
	if err != nil {
		return nil, err
	}

	instance := Instance{}
	err = jsoniter.Unmarshal(data, &instance)
	if err != nil {
		return nil, err
	}

	store, err := New(instance.Type, instance.Option)
	if err != nil {
		return nil, err
	}

	Pools[name] = store
	return store, nil
}

// Select select the loaded store
func Select(name string) Store {
	store, has := Pools[name]
	if !has {
		exception.New("Store:%s does not load", 500, name).Throw()
	}
	return store
}
