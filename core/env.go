package core

import (
	"strings"
)

// EnvList is an environment in the "key=value" form returned by os.Environ.
// Unlike a map it keeps the original order, which is handed to exec as-is.
type EnvList []string

func splitEnv(e string) (key, value string) {
	split := strings.SplitN(e, "=", 2)
	key = split[0]
	if len(split) > 1 {
		value = split[1]
	}
	return key, value
}

// LookupEnv returns the last value set for key.
func (l EnvList) LookupEnv(key string) (string, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		if k, v := splitEnv(l[i]); k == key {
			return v, true
		}
	}
	return "", false
}

// Getenv returns the value of key or "" if it isn't set.
func (l EnvList) Getenv(key string) string {
	val, _ := l.LookupEnv(key)
	return val
}

// Without returns a copy of the environment with every entry for key removed.
func (l EnvList) Without(key string) EnvList {
	out := make(EnvList, 0, len(l))
	for _, e := range l {
		if k, _ := splitEnv(e); k != key {
			out = append(out, e)
		}
	}
	return out
}

// With returns a copy of the environment with key set to value.
func (l EnvList) With(key, value string) EnvList {
	return append(l.Without(key), key+"="+value)
}
