package ident

import (
	"crypto/rand"
	"errors"
	"io"
	mrand "math/rand/v2"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Strategy names, in priority order.
const (
	StrategySecure = "secure"
	StrategyHost   = "host"
	StrategyPseudo = "pseudo"

	// StrategyAuto lets Resolve probe every strategy in priority order.
	StrategyAuto = "auto"
)

// ErrNoHostBridge is returned by the host strategy when no bridge was configured.
var ErrNoHostBridge = errors.New("host random bridge not available")

// Strategy is a single source of UUID-shaped identifiers.
type Strategy interface {
	Name() string
	NewUUID() (string, error)
}

// HostBridge is a random UUID source provided by the embedding runtime,
// e.g. a desktop shell exposing its own secure generator.
type HostBridge interface {
	RandomUUID() (string, error)
}

// HostBridgeFunc adapts a plain function to HostBridge.
type HostBridgeFunc func() (string, error)

// RandomUUID implements HostBridge.
func (f HostBridgeFunc) RandomUUID() (string, error) {
	return f()
}

type secureStrategy struct {
	reader io.Reader
}

// NewSecureStrategy returns a strategy reading UUID v4 entropy from r.
// A nil reader means crypto/rand.Reader.
func NewSecureStrategy(r io.Reader) Strategy {
	if r == nil {
		r = rand.Reader
	}
	return &secureStrategy{reader: r}
}

func (s *secureStrategy) Name() string { return StrategySecure }

func (s *secureStrategy) NewUUID() (string, error) {
	id, err := uuid.NewRandomFromReader(s.reader)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

type hostStrategy struct {
	bridge HostBridge
}

// NewHostStrategy wraps a HostBridge. The bridge output is normalized to
// lower case and must parse as a UUID.
func NewHostStrategy(b HostBridge) Strategy {
	return &hostStrategy{bridge: b}
}

func (s *hostStrategy) Name() string { return StrategyHost }

func (s *hostStrategy) NewUUID() (string, error) {
	if s.bridge == nil {
		return "", ErrNoHostBridge
	}
	raw, err := s.bridge.RandomUUID()
	if err != nil {
		return "", err
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// pseudoStrategy fills the v4 template with math/rand digits. It is not
// cryptographically secure; collisions are the only concern for note ids.
type pseudoStrategy struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewPseudoStrategy returns the non-secure fallback. A nil rng uses the
// math/rand/v2 global source.
func NewPseudoStrategy(rng *mrand.Rand) Strategy {
	return &pseudoStrategy{rng: rng}
}

func (s *pseudoStrategy) Name() string { return StrategyPseudo }

func (s *pseudoStrategy) NewUUID() (string, error) {
	const template = "xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx"
	const hex = "0123456789abcdef"

	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); i++ {
		switch c := template[i]; c {
		case 'x':
			b.WriteByte(hex[s.intN(16)])
		case 'y':
			b.WriteByte(hex[(s.intN(16)&0x3)|0x8])
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

func (s *pseudoStrategy) intN(n int) int {
	if s.rng == nil {
		return mrand.IntN(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// base36 returns n random characters from [0-9a-z].
func (s *pseudoStrategy) base36(n int) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[s.intN(len(alphabet))]
	}
	return string(buf)
}
