package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/nspcc-dev/tiny-runtime/balances"
	"github.com/nspcc-dev/tiny-runtime/common"
	"github.com/nspcc-dev/tiny-runtime/runtime"
	"github.com/nspcc-dev/tiny-runtime/system"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalidExtrinsic is returned for extrinsic entries with no call or with
// more than one call.
var ErrInvalidExtrinsic = errors.New("extrinsic must have exactly one call")

// Scenario is a runtime execution scenario.
type Scenario struct {
	Logger  Logger  `yaml:"Logger"`
	Genesis Genesis `yaml:"Genesis"`
	Blocks  []Block `yaml:"Blocks"`
}

// Logger configures the runtime logger.
type Logger struct {
	// Level is one of zap levels, "info" by default.
	Level string `yaml:"Level"`
	// Encoding is either "console" (default) or "json".
	Encoding string `yaml:"Encoding"`
}

// Genesis is the initial runtime state.
type Genesis struct {
	BlockNumber uint32            `yaml:"BlockNumber"`
	Balances    map[string]string `yaml:"Balances"`
	Nonces      map[string]uint32 `yaml:"Nonces"`
}

// Block is a block to execute.
type Block struct {
	Number     uint32      `yaml:"Number"`
	Extrinsics []Extrinsic `yaml:"Extrinsics"`
}

// Extrinsic is a call of the Caller. Exactly one of call fields must be set.
type Extrinsic struct {
	Caller      string       `yaml:"Caller"`
	Transfer    *Transfer    `yaml:"Transfer,omitempty"`
	CreateClaim *ClaimParams `yaml:"CreateClaim,omitempty"`
	RevokeClaim *ClaimParams `yaml:"RevokeClaim,omitempty"`
}

// Transfer describes balances transfer call.
type Transfer struct {
	To     string `yaml:"To"`
	Amount string `yaml:"Amount"`
}

// ClaimParams describes claim creation and revocation calls.
type ClaimParams struct {
	Content string `yaml:"Content"`
}

// Load reads and validates the scenario from the file.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario file: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}

	return s, nil
}

// Decode reads and validates YAML scenario. Unknown fields are rejected.
func Decode(r io.Reader) (*Scenario, error) {
	var s Scenario

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err := dec.Decode(&s)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode YAML: %w", err)
	}

	err = s.Validate()
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks that all accounts, amounts and calls of the scenario are
// well-formed.
func (s *Scenario) Validate() error {
	_, err := s.Logger.level()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	switch s.Logger.Encoding {
	case "", "console", "json":
	default:
		return fmt.Errorf("logger: unsupported encoding %q", s.Logger.Encoding)
	}

	_, err = s.Genesis.balances()
	if err != nil {
		return fmt.Errorf("genesis: %w", err)
	}

	_, err = s.Genesis.nonces()
	if err != nil {
		return fmt.Errorf("genesis: %w", err)
	}

	_, err = s.RuntimeBlocks()
	return err
}

// RuntimeBlocks converts scenario blocks to runtime ones.
func (s *Scenario) RuntimeBlocks() ([]runtime.Block, error) {
	res := make([]runtime.Block, len(s.Blocks))

	for i := range s.Blocks {
		res[i].Header.BlockNumber = common.BlockNumber(s.Blocks[i].Number)
		res[i].Extrinsics = make([]runtime.Extrinsic, len(s.Blocks[i].Extrinsics))

		for j := range s.Blocks[i].Extrinsics {
			ext, err := s.Blocks[i].Extrinsics[j].toRuntime()
			if err != nil {
				return nil, fmt.Errorf("block #%d, extrinsic #%d: %w", i, j, err)
			}

			res[i].Extrinsics[j] = ext
		}
	}

	return res, nil
}

func (e Extrinsic) toRuntime() (runtime.Extrinsic, error) {
	caller, err := common.ParseAccount(e.Caller)
	if err != nil {
		return runtime.Extrinsic{}, fmt.Errorf("caller: %w", err)
	}

	var n int
	for _, set := range []bool{e.Transfer != nil, e.CreateClaim != nil, e.RevokeClaim != nil} {
		if set {
			n++
		}
	}
	if n != 1 {
		return runtime.Extrinsic{}, ErrInvalidExtrinsic
	}

	var call runtime.Call

	switch {
	case e.Transfer != nil:
		to, err := common.ParseAccount(e.Transfer.To)
		if err != nil {
			return runtime.Extrinsic{}, fmt.Errorf("transfer recipient: %w", err)
		}

		amount, err := common.ParseBalance(e.Transfer.Amount)
		if err != nil {
			return runtime.Extrinsic{}, fmt.Errorf("transfer amount %q: %w", e.Transfer.Amount, err)
		}

		call = runtime.Transfer(to, amount)
	case e.CreateClaim != nil:
		call = runtime.CreateClaim(e.CreateClaim.Content)
	default:
		call = runtime.RevokeClaim(e.RevokeClaim.Content)
	}

	return runtime.Extrinsic{Caller: caller, Call: call}, nil
}

// Apply seeds the runtime with the genesis state.
func (g Genesis) Apply(r *runtime.Runtime) error {
	bs, err := g.balances()
	if err != nil {
		return err
	}

	ns, err := g.nonces()
	if err != nil {
		return err
	}

	r.System().Genesis(common.BlockNumber(g.BlockNumber), ns)
	r.Balances().Genesis(bs)

	return nil
}

func (g Genesis) balances() ([]balances.GenesisBalance, error) {
	res := make([]balances.GenesisBalance, 0, len(g.Balances))

	for _, name := range sortedKeys(g.Balances) {
		acc, err := common.ParseAccount(name)
		if err != nil {
			return nil, fmt.Errorf("balance account %q: %w", name, err)
		}

		amount, err := common.ParseBalance(g.Balances[name])
		if err != nil {
			return nil, fmt.Errorf("balance of %q: %w", name, err)
		}

		res = append(res, balances.GenesisBalance{Account: acc, Amount: amount})
	}

	return res, nil
}

func (g Genesis) nonces() ([]system.GenesisNonce, error) {
	res := make([]system.GenesisNonce, 0, len(g.Nonces))

	for _, name := range sortedKeys(g.Nonces) {
		acc, err := common.ParseAccount(name)
		if err != nil {
			return nil, fmt.Errorf("nonce account %q: %w", name, err)
		}

		res = append(res, system.GenesisNonce{Account: acc, Nonce: common.Nonce(g.Nonces[name])})
	}

	return res, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func (l Logger) level() (zapcore.Level, error) {
	if l.Level == "" {
		return zapcore.InfoLevel, nil
	}

	return zapcore.ParseLevel(l.Level)
}

// Build creates zap logger writing to stderr.
func (l Logger) Build() (*zap.Logger, error) {
	lvl, err := l.level()
	if err != nil {
		return nil, err
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.Level = zap.NewAtomicLevelAt(lvl)
	cc.Sampling = nil
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cc.Encoding = l.Encoding
	if cc.Encoding == "" {
		cc.Encoding = "console"
	}

	return cc.Build()
}
