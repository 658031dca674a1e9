package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	"github.com/nspcc-dev/tiny-runtime/common"
	"github.com/nspcc-dev/tiny-runtime/runtime"
	"github.com/olekukonko/tablewriter"
)

type accountState struct {
	Name    string
	Address string
	Balance string
	Nonce   common.Nonce
	Claims  []string
}

type runtimeState struct {
	BlockNumber common.BlockNumber
	Accounts    []accountState
}

// snapshot collects the state of the accounts having a balance and the named
// ones.
func snapshot(r *runtime.Runtime, names map[common.AccountID]string) runtimeState {
	seen := make(map[common.AccountID]struct{}, len(names))
	accs := make([]common.AccountID, 0, len(names))

	r.Balances().Iterate(func(who common.AccountID, _ *uint256.Int) bool {
		seen[who] = struct{}{}
		accs = append(accs, who)
		return true
	})
	for acc := range names {
		if _, ok := seen[acc]; !ok {
			accs = append(accs, acc)
		}
	}

	sort.Slice(accs, func(i, j int) bool {
		ni, nj := names[accs[i]], names[accs[j]]
		if ni != nj {
			return ni < nj
		}
		return accs[i].Less(accs[j])
	})

	res := runtimeState{
		BlockNumber: r.BlockNumber(),
		Accounts:    make([]accountState, len(accs)),
	}

	for i, acc := range accs {
		res.Accounts[i] = accountState{
			Name:    names[acc],
			Address: common.AccountString(acc),
			Balance: r.BalanceOf(acc).Dec(),
			Nonce:   r.Nonce(acc),
			Claims:  r.Claims().ClaimsOf(acc),
		}
	}

	return res
}

func printState(w io.Writer, r *runtime.Runtime, names map[common.AccountID]string) {
	st := snapshot(r, names)

	fmt.Fprintf(w, "Block number: %d\n", st.BlockNumber)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Account", "Address", "Balance", "Nonce", "Claims"})
	table.SetAutoWrapText(false)

	for _, a := range st.Accounts {
		table.Append([]string{
			a.Name,
			a.Address,
			a.Balance,
			strconv.FormatUint(uint64(a.Nonce), 10),
			strings.Join(a.Claims, ", "),
		})
	}

	table.Render()
}

func printResults(w io.Writer, results []runtime.ExtrinsicResult, names map[common.AccountID]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Caller", "Call", "Result"})
	table.SetAutoWrapText(false)

	for _, res := range results {
		caller, ok := names[res.Caller]
		if !ok {
			caller = common.AccountString(res.Caller)
		}

		status := "OK"
		if res.Err != nil {
			status = res.Err.Error()
		}

		table.Append([]string{strconv.Itoa(res.Index), caller, fmt.Sprint(res.Call), status})
	}

	table.Render()
}
