package ident

import (
	"fmt"
	"io"
	"log/slog"
	mrand "math/rand/v2"
	"runtime"
	"strconv"
	"sync"
	"time"
)

// counterModulus bounds the sequence counter embedded in timestamp ids.
const counterModulus = 10000

// Config holds the inputs for the startup capability probe.
type Config struct {
	// Strategy forces a strategy by name. Empty or "auto" probes all of them.
	Strategy string
	// SecureReader overrides the entropy source of the secure strategy.
	SecureReader io.Reader
	// Bridge is the optional host-provided random source.
	Bridge HostBridge
	// Rand seeds the pseudo strategy. Nil uses the global source.
	Rand   *mrand.Rand
	Logger *slog.Logger
	Now    func() time.Time
}

// Generator produces note identifiers from a strategy chain fixed at Resolve time.
type Generator struct {
	chain  []Strategy
	pseudo *pseudoStrategy
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	counter int
}

// Resolve probes the configured random sources once and returns a Generator
// bound to the first one that works. Strategies after the chosen one stay in
// the chain as call-time fallbacks.
func Resolve(cfg Config) (*Generator, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	pseudo := NewPseudoStrategy(cfg.Rand).(*pseudoStrategy)
	candidates := []Strategy{NewSecureStrategy(cfg.SecureReader)}
	if cfg.Bridge != nil {
		candidates = append(candidates, NewHostStrategy(cfg.Bridge))
	}
	candidates = append(candidates, pseudo)

	start := 0
	switch cfg.Strategy {
	case "", StrategyAuto:
	default:
		start = -1
		for i, s := range candidates {
			if s.Name() == cfg.Strategy {
				start = i
				break
			}
		}
		if start == -1 {
			if cfg.Strategy == StrategyHost {
				return nil, fmt.Errorf("id strategy %q: %w", cfg.Strategy, ErrNoHostBridge)
			}
			return nil, fmt.Errorf("unknown id strategy: %s", cfg.Strategy)
		}
	}

	chain := candidates[start:]
	for i, s := range chain {
		if _, err := s.NewUUID(); err != nil {
			logger.Debug("id strategy unavailable", "strategy", s.Name(), "error", err)
			continue
		}
		chain = chain[i:]
		break
	}
	logger.Debug("id strategy selected", "strategy", chain[0].Name())

	return &Generator{
		chain:  chain,
		pseudo: pseudo,
		logger: logger,
		now:    now,
	}, nil
}

// MustResolve is like Resolve but panics on a bad configuration.
func MustResolve(cfg Config) *Generator {
	g, err := Resolve(cfg)
	if err != nil {
		panic(err)
	}
	return g
}

// Strategy reports the name of the strategy chosen at startup.
func (g *Generator) Strategy() string {
	return g.chain[0].Name()
}

// Generate returns a UUID-v4-shaped identifier.
func (g *Generator) Generate() string {
	for _, s := range g.chain {
		id, err := s.NewUUID()
		if err == nil {
			return id
		}
		g.logger.Debug("id strategy failed, degrading", "strategy", s.Name(), "error", err)
	}
	// The chain always ends with the pseudo strategy, which cannot fail.
	id, _ := g.pseudo.NewUUID()
	return id
}

// TimestampID returns note_<unixMillis>_<counter>_<8 hex chars>. Ids from one
// generator sort by creation time at millisecond resolution.
func (g *Generator) TimestampID() string {
	return fmt.Sprintf("note_%d_%d_%s", g.now().UnixMilli(), g.next(), g.Generate()[:8])
}

// SimpleID returns note_<unixMillis>_<counter>_<9 base36 chars> without
// touching the secure sources.
func (g *Generator) SimpleID() string {
	return fmt.Sprintf("note_%d_%d_%s", g.now().UnixMilli(), g.next(), g.pseudo.base36(9))
}

// ShortID returns nt_<base36 millis>_<5 base36 chars>.
func (g *Generator) ShortID() string {
	return "nt_" + strconv.FormatInt(g.now().UnixMilli(), 36) + "_" + g.pseudo.base36(5)
}

// PrefixedID returns <prefix>_<uuid>. An empty prefix means "note".
func (g *Generator) PrefixedID(prefix string) string {
	if prefix == "" {
		prefix = "note"
	}
	return prefix + "_" + g.Generate()
}

// SystemID tags a UUID with the platform it was generated on.
func (g *Generator) SystemID() string {
	return g.Generate() + "_" + runtime.GOOS + "_" + runtime.GOARCH
}

func (g *Generator) next() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = (g.counter + 1) % counterModulus
	return g.counter
}
