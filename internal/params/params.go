// Package params provides typed access to externally supplied parameters,
// looked up by dotted-path key.
package params

import (
	"os"
	"strconv"
	"strings"
)

// Reader looks up parameter values by dotted-path key, e.g.
// "lex_configuration.user_id". Implementations report whether the key was
// found; an absent key is not an error.
type Reader interface {
	ReadString(key string) (string, bool)
	ReadInt(key string) (int, bool)
	ReadFloat(key string) (float64, bool)
	ReadBool(key string) (bool, bool)
	ReadStringMap(key string) (map[string]string, bool)
	ReadStringList(key string) ([]string, bool)
}

// EnvReader resolves dotted paths against environment variables:
// "lex_configuration.user_id" reads LEX_CONFIGURATION_USER_ID, with Prefix
// (if set) prepended the same way. Map values are "k=v,k2=v2" pairs and list
// values are comma separated.
type EnvReader struct {
	Prefix string
}

func (r EnvReader) envKey(key string) string {
	k := strings.NewReplacer(".", "_", "/", "_", "-", "_").Replace(key)
	if r.Prefix != "" {
		k = r.Prefix + "_" + k
	}
	return strings.ToUpper(k)
}

// ReadString reads a string parameter.
func (r EnvReader) ReadString(key string) (string, bool) {
	v, ok := os.LookupEnv(r.envKey(key))
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// ReadInt reads an integer parameter.
func (r EnvReader) ReadInt(key string) (int, bool) {
	v, ok := r.ReadString(key)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return i, true
}

// ReadFloat reads a floating-point parameter.
func (r EnvReader) ReadFloat(key string) (float64, bool) {
	v, ok := r.ReadString(key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ReadBool reads a boolean parameter.
func (r EnvReader) ReadBool(key string) (bool, bool) {
	v, ok := r.ReadString(key)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

// ReadStringMap reads a map parameter encoded as "k=v,k2=v2".
func (r EnvReader) ReadStringMap(key string) (map[string]string, bool) {
	v, ok := r.ReadString(key)
	if !ok {
		return nil, false
	}
	m := make(map[string]string)
	for _, pair := range strings.Split(v, ",") {
		k, val, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			return nil, false
		}
		m[k] = val
	}
	return m, true
}

// ReadStringList reads a comma-separated list parameter.
func (r EnvReader) ReadStringList(key string) ([]string, bool) {
	v, ok := r.ReadString(key)
	if !ok {
		return nil, false
	}
	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, true
}

// StaticReader serves parameters from literal maps. It is the deterministic
// source used in tests and for embedding fixed parameter sets.
type StaticReader struct {
	Strings map[string]string
	Ints    map[string]int
	Floats  map[string]float64
	Bools   map[string]bool
	Maps    map[string]map[string]string
	Lists   map[string][]string
}

// ReadString reads a string parameter.
func (r StaticReader) ReadString(key string) (string, bool) {
	v, ok := r.Strings[key]
	return v, ok
}

// ReadInt reads an integer parameter.
func (r StaticReader) ReadInt(key string) (int, bool) {
	v, ok := r.Ints[key]
	return v, ok
}

// ReadFloat reads a floating-point parameter.
func (r StaticReader) ReadFloat(key string) (float64, bool) {
	v, ok := r.Floats[key]
	return v, ok
}

// ReadBool reads a boolean parameter.
func (r StaticReader) ReadBool(key string) (bool, bool) {
	v, ok := r.Bools[key]
	return v, ok
}

// ReadStringMap reads a map parameter.
func (r StaticReader) ReadStringMap(key string) (map[string]string, bool) {
	v, ok := r.Maps[key]
	return v, ok
}

// ReadStringList reads a list parameter.
func (r StaticReader) ReadStringList(key string) ([]string, bool) {
	v, ok := r.Lists[key]
	return v, ok
}
