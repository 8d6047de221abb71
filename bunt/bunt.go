package bunt

import (
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/buntdb"
	"github.com/yaoapp/kun/log"
)

// New create a new store on an in-memory buntdb instance
func New(option *Option) (*Store, error) {
	db, err := buntdb.Open(":memory:")
	if err != nil {
		return nil, err
	}

	store := &Store{db: db}
	if option != nil {
		store.Option = *option
	}
	return store, nil
}

// Close release the underlying database
func (store *Store) Close() error {
	return store.db.Close()
}

// Get looks up a key's value from the store.
func (store *Store) Get(key string) (value interface{}, ok bool) {
	key = fmt.Sprintf("%s%s", store.Option.Prefix, key)
	var val string
	err := store.db.View(func(tx *buntdb.Tx) error {
		var err error
		val, err = tx.Get(key)
		return err
	})
	if err != nil {
		if err != buntdb.ErrNotFound {
			log.Error("Store bunt Get %s: %s", key, err.Error())
		}
		return nil, false
	}

	err = jsoniter.UnmarshalFromString(val, &value)
	if err != nil {
		log.Error("Store bunt Get %s: %s val: %s", key, err.Error(), val)
		return nil, false
	}

	return value, true
}

// Set adds a value to the store. A zero ttl stores the value already stale,
// a negative ttl is rejected with ErrInvalidTTL.
func (store *Store) Set(key string, value interface{}, ttl time.Duration) error {
	if ttl < 0 {
		return ErrInvalidTTL
	}

	key = fmt.Sprintf("%s%s", store.Option.Prefix, key)
	val, err := jsoniter.MarshalToString(value)
	if err != nil {
		log.Error("Store bunt Set %s: %s", key, err.Error())
		return err
	}

	// buntdb measures the ttl from now, so the smallest positive ttl is
	// the closest it can come to an entry stale in the same instant
	if ttl == 0 {
		ttl = time.Nanosecond
	}

	err = store.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key, val, &buntdb.SetOptions{Expires: true, TTL: ttl})
		return err
	})
	if err != nil {
		log.Error("Store bunt Set %s: %s", key, err.Error())
		return err
	}
	return nil
}

// Del remove is used to purge a key from the store
func (store *Store) Del(key string) error {
	key = fmt.Sprintf("%s%s", store.Option.Prefix, key)
	err := store.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(key)
		if err == buntdb.ErrNotFound {
			return nil
		}
		return err
	})
	if err != nil {
		return err
	}
	return nil
}

// Has check if the key exists
func (store *Store) Has(key string) bool {
	key = fmt.Sprintf("%s%s", store.Option.Prefix, key)
	err := store.db.View(func(tx *buntdb.Tx) error {
		_, err := tx.Get(key)
		return err
	})
	return err == nil
}

// Len returns the number of stored entries (**not O(1)**)
func (store *Store) Len() int {
	length := 0
	err := store.db.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys(store.Option.Prefix+"*", func(key, value string) bool {
			length++
			return true
		})
	})
	if err != nil {
		log.Error("Store bunt Len: %s", err.Error())
		return 0
	}
	return length
}

// Keys returns all the cached keys
func (store *Store) Keys() []string {
	prefix := store.Option.Prefix
	keys := []string{}
	err := store.db.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys(prefix+"*", func(key, value string) bool {
			keys = append(keys, strings.TrimPrefix(key, prefix))
			return true
		})
	})
	if err != nil {
		log.Error("Store bunt Keys: %s", err.Error())
		return []string{}
	}
	return keys
}

// Clear is used to clear the cache
func (store *Store) Clear() {
	err := store.db.Update(func(tx *buntdb.Tx) error {
		if store.Option.Prefix == "" {
			return tx.DeleteAll()
		}

		keys := []string{}
		err := tx.AscendKeys(store.Option.Prefix+"*", func(key, value string) bool {
			keys = append(keys, key)
			return true
		})
		if err != nil {
			return err
		}

		for _, key := range keys {
			if _, err := tx.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("Store bunt Clear: %s", err.Error())
	}
}

// GetSet looks up a key's value from the cache. if does not exist add to the cache
func (store *Store) GetSet(key string, ttl time.Duration, getValue func(key string) (interface{}, error)) (interface{}, error) {
	value, ok := store.Get(key)
	if !ok {
		var err error
		value, err = getValue(key)
		if err != nil {
			return nil, err
		}

		err = store.Set(key, value, ttl)
		if err != nil {
			return nil, err
		}
	}
	return value, nil
}

// GetDel looks up a key's value from the cache, then remove it.
func (store *Store) GetDel(key string) (value interface{}, ok bool) {
	key = fmt.Sprintf("%s%s", store.Option.Prefix, key)
	var val string
	err := store.db.Update(func(tx *buntdb.Tx) error {
		var err error
		val, err = tx.Delete(key)
		return err
	})
	if err != nil {
		if err != buntdb.ErrNotFound {
			log.Error("Store bunt GetDel %s: %s", key, err.Error())
		}
		return nil, false
	}

	err = jsoniter.UnmarshalFromString(val, &value)
	if err != nil {
		log.Error("Store bunt GetDel %s: %s val: %s", key, err.Error(), val)
		return nil, false
	}

	return value, true
}

// GetMulti mulit get values
func (store *Store) GetMulti(keys []string) map[string]interface{} {
	values := map[string]interface{}{}
	for _, key := range keys {
		value, _ := store.Get(key)
		values[key] = value
	}
	return values
}

// SetMulti mulit set values
func (store *Store) SetMulti(values map[string]interface{}, ttl time.Duration) {
	for key, value := range values {
		store.Set(key, value, ttl)
	}
}

// DelMulti mulit remove values
func (store *Store) DelMulti(keys []string) {
	for _, key := range keys {
		store.Del(key)
	}
}

// GetSetMulti mulit get values, if does not exist add to the cache
func (store *Store) GetSetMulti(keys []string, ttl time.Duration, getValue func(key string) (interface{}, error)) map[string]interface{} {
	values := map[string]interface{}{}
	for _, key := range keys {
		value, err := store.GetSet(key, ttl, getValue)
		if err != nil {
			log.Error("GetSetMulti Set %s: %s", key, err.Error())
		}
		values[key] = value
	}
	return values
}
