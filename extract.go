package molstore

import (
	"context"

	"github.com/outofforest/logger"
	"go.uber.org/zap"

	"github.com/outofforest/molstore/selection"
	"github.com/outofforest/molstore/store"
	"github.com/outofforest/molstore/types"
)

// Extract creates new structure containing selected atoms.
// Runs of consecutive atoms are block-copied, atom and residue types are interned again in the new structure.
// Bonds are computed for the new structure if they were computed for this one.
func (s *Structure) Extract(ctx context.Context, sel *selection.Selection) (*Structure, error) {
	indices := s.AtomIndices(sel)
	e := &extractor{
		src:          s,
		dst:          newStructure(len(indices), 0),
		atomTypes:    map[types.AtomTypeID]types.AtomTypeID{},
		srcModel:     types.NoIndex,
		srcChain:     types.NoIndex,
		srcResidue:   types.NoIndex,
		dstModel:     types.NoIndex,
		dstChain:     types.NoIndex,
		dstResidue:   types.NoIndex,
		residueTypes: make([]types.AtomTypeID, 0, 32),
	}

	for k := 0; k < len(indices); {
		ai := indices[k]
		ri := int(s.Atoms.ResidueIndex.Data[ai])
		n := 1
		for k+n < len(indices) && indices[k+n] == ai+n && int(s.Atoms.ResidueIndex.Data[ai+n]) == ri {
			n++
		}

		if ri != e.srcResidue {
			if err := e.startResidue(ri); err != nil {
				return nil, err
			}
		}
		if err := e.copyAtoms(ai, n); err != nil {
			return nil, err
		}
		k += n
	}
	if err := e.finishResidue(); err != nil {
		return nil, err
	}

	logger.Get(ctx).Debug("Structure extracted",
		zap.Int("models", e.dst.Models.Count),
		zap.Int("chains", e.dst.Chains.Count),
		zap.Int("residues", e.dst.Residues.Count),
		zap.Int("atoms", e.dst.Atoms.Count))

	if s.bondOffsets != nil {
		e.dst.BuildBonds(ctx)
	}

	return e.dst, nil
}

type extractor struct {
	src       *Structure
	dst       *Structure
	atomTypes map[types.AtomTypeID]types.AtomTypeID

	srcModel, srcChain, srcResidue int
	dstModel, dstChain, dstResidue int

	residueTypes []types.AtomTypeID
}

func (e *extractor) startResidue(ri int) error {
	if err := e.finishResidue(); err != nil {
		return err
	}

	ci := e.src.residueChain(ri)
	if ci != e.srcChain {
		mi := e.src.chainModel(ci)
		if mi != e.srcModel {
			e.srcModel = mi
			e.dstModel = e.dst.Models.Add(store.ModelRow{ChainOffset: e.dst.Chains.Count})
		}

		e.srcChain = ci
		row := e.src.Chains.Row(ci)
		row.ModelIndex = e.dstModel
		row.ResidueOffset = e.dst.Residues.Count
		row.ResidueCount = 0
		e.dstChain = e.dst.Chains.Add(row)
		e.dst.Models.ChainCount.Data[e.dstModel]++
	}

	e.srcResidue = ri
	row := e.src.Residues.Row(ri)
	row.ChainIndex = e.dstChain
	row.AtomOffset = e.dst.Atoms.Count
	row.AtomCount = 0
	e.dstResidue = e.dst.Residues.Add(row)
	e.dst.Chains.ResidueCount.Data[e.dstChain]++
	return nil
}

func (e *extractor) copyAtoms(srcOffset, n int) error {
	dstOffset := e.dst.Atoms.Count
	e.dst.Atoms.CopyFrom(&e.src.Atoms.Store, dstOffset, srcOffset, n)
	e.dst.Atoms.Count += n

	for i := dstOffset; i < dstOffset+n; i++ {
		e.dst.Atoms.ResidueIndex.Data[i] = uint32(e.dstResidue)

		srcID := e.dst.Atoms.AtomTypeID.Data[i]
		dstID, exists := e.atomTypes[srcID]
		if !exists {
			at := e.src.AtomTypes.Get(srcID)
			var err error
			dstID, err = e.dst.AtomTypes.Add(at.Name, at.Element)
			if err != nil {
				return err
			}
			e.atomTypes[srcID] = dstID
		}
		e.dst.Atoms.AtomTypeID.Data[i] = dstID
		e.residueTypes = append(e.residueTypes, dstID)
	}
	e.dst.Residues.AtomCount.Data[e.dstResidue] += uint32(n)
	return nil
}

func (e *extractor) finishResidue() error {
	if e.dstResidue == types.NoIndex {
		return nil
	}

	rt := e.src.residueType(e.srcResidue)
	id, err := e.dst.ResidueTypes.Add(rt.Name, e.residueTypes, rt.Hetero)
	if err != nil {
		return err
	}
	e.dst.Residues.ResidueTypeID.Data[e.dstResidue] = id
	e.residueTypes = e.residueTypes[:0]
	e.dstResidue = types.NoIndex
	return nil
}
