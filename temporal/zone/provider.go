package zone

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/aparo/temporal/temporal/types"
)

// Provider supplies zones by id. Implementations must supply a working
// "UTC" zone and be safe for concurrent use.
type Provider interface {
	// GetZone returns the zone for id or an error matching ErrZone when
	// the id is unknown.
	GetZone(id string) (Zone, error)

	// AvailableIDs returns the sorted ids this provider can supply.
	AvailableIDs() []string
}

// fixedProvider is the built-in Provider: it knows UTC and synthesizes
// fixed-offset zones from [+-]hh:mm[:ss[.SSS]] identifiers.
type fixedProvider struct{}

func (fixedProvider) GetZone(id string) (Zone, error) {
	if id == "" || id == "UTC" || id == "Z" {
		return UTC, nil
	}
	if id[0] == '+' || id[0] == '-' {
		offset, err := types.ParseOffset(id)
		if err != nil {
			return nil, err
		}
		return ForOffsetMillis(offset)
	}
	return nil, fmt.Errorf("%w: unknown zone id %q", ErrZone, id)
}

func (fixedProvider) AvailableIDs() []string { return []string{"UTC"} }

// MapProvider serves a fixed set of zones by id, always including UTC.
type MapProvider struct {
	zones map[string]Zone
}

// NewMapProvider returns a Provider serving the given zones plus UTC.
func NewMapProvider(zones ...Zone) (*MapProvider, error) {
	m := map[string]Zone{"UTC": UTC}
	for _, z := range zones {
		if z == nil {
			return nil, fmt.Errorf("%w: nil zone", ErrZone)
		}
		if prev, ok := m[z.ID()]; ok && prev != z {
			return nil, fmt.Errorf("%w: duplicate zone id %q", ErrZone, z.ID())
		}
		m[z.ID()] = z
	}
	return &MapProvider{zones: m}, nil
}

// GetZone implements Provider, falling back to fixed-offset identifiers.
func (p *MapProvider) GetZone(id string) (Zone, error) {
	if z, ok := p.zones[id]; ok {
		return z, nil
	}
	return fixedProvider{}.GetZone(id)
}

// AvailableIDs implements Provider.
func (p *MapProvider) AvailableIDs() []string {
	ids := maps.Keys(p.zones)
	slices.Sort(ids)
	return ids
}

// holder boxes interface values so the atomic pointers below always swap a
// single concrete type.
type holder[T any] struct{ v T }

//nolint:gochecknoglobals
var (
	defaultZone    atomic.Pointer[holder[Zone]]
	activeProvider atomic.Pointer[holder[Provider]]
)

// Default returns the process-wide default zone, initializing it to UTC on
// first use. The default participates only where a caller passes a nil
// zone; value objects capture their zone at construction.
func Default() Zone {
	if h := defaultZone.Load(); h != nil {
		return h.v
	}
	// Lost races fall through to re-read the winner.
	if defaultZone.CompareAndSwap(nil, &holder[Zone]{v: UTC}) {
		return UTC
	}
	return defaultZone.Load().v
}

// SetDefault replaces the process-wide default zone. The change applies to
// subsequent lookups only; last writer wins.
func SetDefault(z Zone) error {
	if z == nil {
		return fmt.Errorf("%w: default zone must not be nil", types.ErrConfig)
	}
	defaultZone.Store(&holder[Zone]{v: z})
	return nil
}

// ActiveProvider returns the process-wide zone provider, initializing it to
// the built-in fixed-offset provider on first use.
func ActiveProvider() Provider {
	if h := activeProvider.Load(); h != nil {
		return h.v
	}
	p := Provider(fixedProvider{})
	if activeProvider.CompareAndSwap(nil, &holder[Provider]{v: p}) {
		return p
	}
	return activeProvider.Load().v
}

// SetProvider replaces the process-wide zone provider. It must supply a
// usable UTC zone. The change applies to subsequent lookups only; last
// writer wins.
func SetProvider(p Provider) error {
	if p == nil {
		return fmt.Errorf("%w: provider must not be nil", types.ErrConfig)
	}
	if z, err := p.GetZone("UTC"); err != nil || z == nil {
		return fmt.Errorf("%w: provider does not supply UTC", types.ErrConfig)
	}
	activeProvider.Store(&holder[Provider]{v: p})
	return nil
}

// key is an unexported type for keys defined in this package. This prevents
// collisions with keys defined in other packages.
type key int

// zoneKey is the key for Zone values in Contexts. It is unexported; clients
// use ContextWithZone and FromContext instead of using this key directly.
//
//nolint:gochecknoglobals
var zoneKey key

// ContextWithZone returns a new Context that carries value z.
func ContextWithZone(ctx context.Context, z Zone) context.Context {
	if z == nil {
		return ctx
	}
	return context.WithValue(ctx, zoneKey, z)
}

// FromContext returns the Zone value stored in ctx, or the process default.
func FromContext(ctx context.Context) Zone {
	if z, ok := ctx.Value(zoneKey).(Zone); ok {
		return z
	}
	return Default()
}
