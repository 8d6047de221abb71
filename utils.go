package kan

import (
	"os"
	"strings"
	"time"

	"github.com/yaoapp/kun/any"
)

// EnvString replace $ENV.xxx with the env
func EnvString(key interface{}, defaults ...string) string {
	k, ok := key.(string)
	if !ok {
		if len(defaults) > 0 {
			return defaults[0]
		}
		return ""
	}

	if ok && strings.HasPrefix(k, "$ENV.") {
		k = strings.TrimPrefix(k, "$ENV.")
		v := os.Getenv(k)
		if v == "" && len(defaults) > 0 {
			return defaults[0]
		}
		return v
	}
	return key.(string)
}

// EnvInt replace $ENV.xxx with the env and cast to the integer
func EnvInt(key interface{}, defaults ...int) int {
	if k, ok := key.(string); ok && strings.HasPrefix(k, "$ENV.") {
		k = strings.TrimPrefix(k, "$ENV.")
		v := os.Getenv(k)
		if v == "" {
			if len(defaults) > 0 {
				return defaults[0]
			}
			return 0
		}
		return any.Of(v).CInt()
	}

	v, ok := key.(int)
	if !ok {
		if len(defaults) > 0 {
			return defaults[0]
		}
		return any.Of(key).CInt()
	}
	return v
}

// EnvDuration replace $ENV.xxx with the env and cast to the duration
func EnvDuration(key interface{}, defaults ...time.Duration) time.Duration {
	if d, ok := key.(time.Duration); ok {
		return d
	}

	k, ok := key.(string)
	if !ok {
		if len(defaults) > 0 {
			return defaults[0]
		}
		return 0
	}

	if strings.HasPrefix(k, "$ENV.") {
		k = os.Getenv(strings.TrimPrefix(k, "$ENV."))
	}

	d, err := time.ParseDuration(k)
	if err != nil {
		if len(defaults) > 0 {
			return defaults[0]
		}
		return 0
	}
	return d
}
