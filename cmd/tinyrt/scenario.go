package main

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/nspcc-dev/tiny-runtime/common"
	"github.com/nspcc-dev/tiny-runtime/config"
	"github.com/nspcc-dev/tiny-runtime/runtime"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func demo(c *cli.Context) error {
	return execute(c, demoScenario())
}

func run(c *cli.Context) error {
	path := c.String("config")
	if path == "" {
		return errors.New("missing scenario file, use --config")
	}

	s, err := config.Load(path)
	if err != nil {
		return err
	}

	return execute(c, s)
}

func execute(c *cli.Context, s *config.Scenario) error {
	log, err := s.Logger.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	blocks, err := s.RuntimeBlocks()
	if err != nil {
		return err
	}

	r := runtime.New(runtime.Options{Logger: log})

	err = s.Genesis.Apply(r)
	if err != nil {
		return fmt.Errorf("apply genesis: %w", err)
	}

	names := accountNames(s)
	w := c.App.Writer

	fmt.Fprintln(w, "Genesis state:")
	printState(w, r, names)

	var rejected int

	for i := range blocks {
		results, err := r.ApplyBlock(blocks[i])
		if err != nil {
			if !errors.Is(err, runtime.ErrBlockNumberMismatch) {
				return err
			}

			rejected++
			fmt.Fprintf(w, "\nBlock #%d rejected: %v\n", blocks[i].Header.BlockNumber, err)
			continue
		}

		fmt.Fprintf(w, "\nBlock #%d (%s):\n", blocks[i].Header.BlockNumber, blocks[i].Hash().StringLE())
		printResults(w, results, names)
	}

	fmt.Fprintln(w, "\nFinal state:")
	printState(w, r, names)

	if c.Bool("debug") {
		fmt.Fprintln(w)
		spew.Fdump(w, snapshot(r, names))
	}

	log.Info("scenario completed",
		zap.Int("blocks", len(blocks)),
		zap.Int("rejected", rejected),
		zap.Uint32("block", uint32(r.BlockNumber())))

	return nil
}

// demoScenario returns genesis and blocks of the reference run: transfers
// and claims by the development accounts followed by a block with a wrong
// number.
func demoScenario() *config.Scenario {
	transfer := func(from, to, amount string) config.Extrinsic {
		return config.Extrinsic{Caller: from, Transfer: &config.Transfer{To: to, Amount: amount}}
	}
	create := func(caller, content string) config.Extrinsic {
		return config.Extrinsic{Caller: caller, CreateClaim: &config.ClaimParams{Content: content}}
	}
	revoke := func(caller, content string) config.Extrinsic {
		return config.Extrinsic{Caller: caller, RevokeClaim: &config.ClaimParams{Content: content}}
	}

	return &config.Scenario{
		Logger: config.Logger{Level: "warn"},
		Genesis: config.Genesis{
			Balances: map[string]string{
				"test00": "100",
				"alice":  "100",
			},
		},
		Blocks: []config.Block{
			{Number: 0, Extrinsics: []config.Extrinsic{
				transfer("test00", "test01", "1"),
			}},
			{Number: 1, Extrinsics: []config.Extrinsic{
				transfer("alice", "bob", "30"),
				transfer("alice", "charlie", "20"),
			}},
			{Number: 2, Extrinsics: []config.Extrinsic{
				create("alice", "claim_01"),
				create("bob", "claim_02"),
			}},
			{Number: 3, Extrinsics: []config.Extrinsic{
				revoke("alice", "claim_01"),
				revoke("bob", "claim_03"),
			}},
			{Number: 99},
		},
	}
}

// accountNames maps accounts mentioned in the scenario to the names they're
// given there.
func accountNames(s *config.Scenario) map[common.AccountID]string {
	res := make(map[common.AccountID]string)

	add := func(name string) {
		acc, err := common.ParseAccount(name)
		if err == nil {
			res[acc] = name
		}
	}

	for name := range s.Genesis.Balances {
		add(name)
	}
	for name := range s.Genesis.Nonces {
		add(name)
	}
	for i := range s.Blocks {
		for _, e := range s.Blocks[i].Extrinsics {
			add(e.Caller)
			if e.Transfer != nil {
				add(e.Transfer.To)
			}
		}
	}

	return res
}
