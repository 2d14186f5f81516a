package configuration

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
)

// ErrNotSupported is returned by provider methods koanf does not need for flags.
var ErrNotSupported = errors.New("pflag provider does not support this method")

// lowerPosflag implements a pflag command line provider with lower cased keys.
type lowerPosflag struct {
	delim   string
	flagset *pflag.FlagSet
	ko      *koanf.Koanf
}

// lowerPosflagProvider returns a provider for the flags of f. Keys are nested along delim.
//
// Flags that were not set on the command line only contribute their default value if ko does not hold
// the key yet.
func lowerPosflagProvider(f *pflag.FlagSet, delim string, ko *koanf.Koanf) *lowerPosflag {
	return &lowerPosflag{
		flagset: f,
		delim:   delim,
		ko:      ko,
	}
}

func (p *lowerPosflag) flagValue(f *pflag.Flag) interface{} {
	var (
		v   interface{}
		err error
	)

	switch f.Value.Type() {
	case "int", "int8", "int16", "int32", "int64":
		v, err = strconv.ParseInt(f.Value.String(), 10, 64)
	case "float32":
		var fl float32
		fl, err = p.flagset.GetFloat32(f.Name)
		v = float64(fl)
	case "float64":
		v, err = p.flagset.GetFloat64(f.Name)
	case "bool":
		v, err = p.flagset.GetBool(f.Name)
	case "stringSlice":
		v, err = p.flagset.GetStringSlice(f.Name)
	case "intSlice":
		var ints []int
		ints, err = p.flagset.GetIntSlice(f.Name)
		v = lo.Map(ints, func(i int, _ int) interface{} { return int64(i) })
	default:
		return f.Value.String()
	}

	if err != nil {
		return f.Value.String()
	}

	return v
}

// Read reads the flag variables and returns a nested conf map.
func (p *lowerPosflag) Read() (map[string]interface{}, error) {
	mp := make(map[string]interface{})
	p.flagset.VisitAll(func(f *pflag.Flag) {
		key := strings.ToLower(f.Name)

		// If no value was explicitly set in the command line,
		// check if the default value should be used.
		if !f.Changed && (p.ko == nil || p.ko.Exists(key)) {
			return
		}

		mp[key] = p.flagValue(f)
	})

	return maps.Unflatten(mp, p.delim), nil
}

// ReadBytes is not supported.
func (p *lowerPosflag) ReadBytes() ([]byte, error) {
	return nil, ErrNotSupported
}

// Watch is not supported.
func (p *lowerPosflag) Watch(func(event interface{}, err error)) error {
	return ErrNotSupported
}
