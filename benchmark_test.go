package molstore_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/parallel"

	"github.com/outofforest/molstore"
	"github.com/outofforest/molstore/selection"
	"github.com/outofforest/molstore/test"
)

// go test -benchtime=1x -timeout=24h -bench=. -run=^$ -cpuprofile profile.out
// go tool pprof -http="localhost:8000" pprofbin ./profile.out

func BenchmarkSelection(b *testing.B) {
	const (
		numOfStructures = 8
		numOfResidues   = 100_000
	)

	b.StopTimer()
	b.ResetTimer()

	ctx := test.NewContext(b)
	structures := make([]*molstore.Structure, 0, numOfStructures)
	for range numOfStructures {
		structures = append(structures, buildHelix(ctx, b, numOfResidues))
	}

	selections := []*selection.Selection{
		selection.New("protein and not backbone"),
		selection.New("1000-2000 and .CA"),
		selection.New("(ALA or SER) and not (polarh or bonded)"),
		selection.New(":A/0 and not 50000-60000"),
	}
	for _, sel := range selections {
		require.NoError(b, sel.Err())
	}

	for bi := 0; bi < b.N; bi++ {
		func() {
			b.StartTimer()
			defer b.StopTimer()

			counts := make([]int, len(structures))
			err := parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
				for i, s := range structures {
					spawn(fmt.Sprintf("structure-%d", i), parallel.Continue, func(ctx context.Context) error {
						for _, sel := range selections {
							s.EachAtom(func(a *molstore.Atom) {
								counts[i]++
							}, sel)
						}
						return nil
					})
				}
				return nil
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				panic(err)
			}

			for _, c := range counts[1:] {
				require.Equal(b, counts[0], c)
			}
		}()
	}
}

func buildHelix(ctx context.Context, b *testing.B, numOfResidues int) *molstore.Structure {
	builder := molstore.NewBuilder(molstore.BuilderConfig{
		AtomCapacity:    6 * numOfResidues,
		ResidueCapacity: numOfResidues,
		BuildBonds:      true,
	})
	resNames := []string{"GLY", "ALA", "SER"}
	for ri := range numOfResidues {
		resName := resNames[ri%len(resNames)]
		origin := [3]float32{test.ResidueSpacing * float32(ri), 0, 0}
		atoms := []test.AtomAt{test.N, test.CA, test.C, test.O}
		switch resName {
		case "ALA":
			atoms = append(atoms, test.CB, test.H)
		case "SER":
			atoms = append(atoms, test.CB, test.OG)
		}
		for _, a := range test.Residue(molstore.ResidueKey{ChainName: "A", ResName: resName, ResNo: int32(ri + 1)},
			origin, atoms...) {
			require.NoError(b, builder.AddAtom(a.Key, a.Data))
		}
	}

	s, err := builder.Build(ctx)
	require.NoError(b, err)
	b.Cleanup(s.Dispose)
	return s
}
