package molstore

import (
	"context"

	"github.com/outofforest/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/molstore/chem"
	"github.com/outofforest/molstore/store"
	"github.com/outofforest/molstore/types"
)

// BuilderConfig stores builder configuration.
type BuilderConfig struct {
	// AtomCapacity is the number of atom rows allocated upfront.
	AtomCapacity int

	// ResidueCapacity is the number of residue rows allocated upfront.
	ResidueCapacity int

	// BuildBonds tells Build to compute bonds.
	BuildBonds bool
}

// ResidueKey identifies the model, chain and residue the atom belongs to.
type ResidueKey struct {
	Model     int
	ChainName string
	ChainID   string
	Entity    int
	ResName   string
	ResNo     int32
	InsCode   byte
	Hetero    bool
	SStruc    byte
}

// AtomData stores attributes of the atom.
// If Element is empty it is guessed from the atom name.
type AtomData struct {
	Name      string
	Element   string
	X, Y, Z   float32
	Serial    int32
	BFactor   float32
	AltLoc    byte
	Occupancy float32
}

type chainKey struct {
	name   string
	id     string
	entity int
}

type residueKey struct {
	resName string
	resNo   int32
	insCode byte
	hetero  bool
}

// NewBuilder creates new structure builder.
func NewBuilder(config BuilderConfig) *Builder {
	return &Builder{
		config:       config,
		s:            newStructure(config.AtomCapacity, config.ResidueCapacity),
		modelIndex:   types.NoIndex,
		chainIndex:   types.NoIndex,
		residueIndex: types.NoIndex,
		seenModels:   map[int]struct{}{},
	}
}

// Builder builds the structure from atoms supplied in hierarchy order.
// Atoms of a residue, residues of a chain and chains of a model must be added contiguously.
type Builder struct {
	config BuilderConfig
	s      *Structure
	built  bool

	model   int
	chain   chainKey
	residue residueKey

	modelIndex       int
	chainIndex       int
	residueIndex     int
	residuePending   bool
	residueAtomTypes []types.AtomTypeID

	seenModels   map[int]struct{}
	seenChains   map[chainKey]struct{}
	seenResidues map[residueKey]struct{}
}

// AddAtom adds atom to the structure, starting new model, chain or residue whenever the key changes.
func (b *Builder) AddAtom(key ResidueKey, atom AtomData) error {
	if b.built {
		return errors.New("structure has been already built")
	}

	ck := chainKey{name: key.ChainName, id: key.ChainID, entity: key.Entity}
	rk := residueKey{resName: key.ResName, resNo: key.ResNo, insCode: key.InsCode, hetero: key.Hetero}

	switch {
	case b.modelIndex == types.NoIndex || key.Model != b.model:
		if err := b.startModel(key.Model); err != nil {
			return err
		}
		if err := b.startChain(ck); err != nil {
			return err
		}
		if err := b.startResidue(rk, key.SStruc); err != nil {
			return err
		}
	case ck != b.chain:
		if err := b.startChain(ck); err != nil {
			return err
		}
		if err := b.startResidue(rk, key.SStruc); err != nil {
			return err
		}
	case rk != b.residue:
		if err := b.startResidue(rk, key.SStruc); err != nil {
			return err
		}
	}

	atomTypeID, err := b.s.AtomTypes.Add(atom.Name, chem.NormalizeElement(atom.Element, atom.Name, key.ResName))
	if err != nil {
		return err
	}
	b.residueAtomTypes = append(b.residueAtomTypes, atomTypeID)

	b.s.Atoms.Add(store.AtomRow{
		ResidueIndex: b.residueIndex,
		AtomTypeID:   atomTypeID,
		X:            atom.X,
		Y:            atom.Y,
		Z:            atom.Z,
		Serial:       atom.Serial,
		BFactor:      atom.BFactor,
		AltLoc:       atom.AltLoc,
		Occupancy:    atom.Occupancy,
	})
	b.s.Residues.AtomCount.Data[b.residueIndex]++

	return nil
}

// Build finalizes the structure. Builder can't be used afterwards.
func (b *Builder) Build(ctx context.Context) (*Structure, error) {
	if b.built {
		return nil, errors.New("structure has been already built")
	}
	if err := b.finishResidue(); err != nil {
		return nil, err
	}
	b.built = true

	logger.Get(ctx).Debug("Structure built",
		zap.Int("models", b.s.Models.Count),
		zap.Int("chains", b.s.Chains.Count),
		zap.Int("residues", b.s.Residues.Count),
		zap.Int("atoms", b.s.Atoms.Count),
		zap.Int("atomTypes", b.s.AtomTypes.Len()),
		zap.Int("residueTypes", b.s.ResidueTypes.Len()))

	if b.config.BuildBonds {
		b.s.BuildBonds(ctx)
	}

	return b.s, nil
}

func (b *Builder) startModel(model int) error {
	if _, exists := b.seenModels[model]; exists {
		return errors.Errorf("atoms of model %d are not contiguous", model)
	}
	if err := b.finishResidue(); err != nil {
		return err
	}

	b.seenModels[model] = struct{}{}
	b.seenChains = map[chainKey]struct{}{}
	b.model = model
	b.modelIndex = b.s.Models.Add(store.ModelRow{ChainOffset: b.s.Chains.Count})
	return nil
}

func (b *Builder) startChain(ck chainKey) error {
	if _, exists := b.seenChains[ck]; exists {
		return errors.Errorf("atoms of chain %q are not contiguous in model %d", ck.name, b.model)
	}
	if err := b.finishResidue(); err != nil {
		return err
	}

	b.seenChains[ck] = struct{}{}
	b.seenResidues = map[residueKey]struct{}{}
	b.chain = ck
	b.chainIndex = b.s.Chains.Add(store.ChainRow{
		EntityIndex:   ck.entity,
		ModelIndex:    b.modelIndex,
		ResidueOffset: b.s.Residues.Count,
		Name:          ck.name,
		ID:            ck.id,
	})
	b.s.Models.ChainCount.Data[b.modelIndex]++
	return nil
}

func (b *Builder) startResidue(rk residueKey, sstruc byte) error {
	if _, exists := b.seenResidues[rk]; exists {
		return errors.Errorf("atoms of residue %s %d are not contiguous in chain %q", rk.resName, rk.resNo,
			b.chain.name)
	}
	if err := b.finishResidue(); err != nil {
		return err
	}

	b.seenResidues[rk] = struct{}{}
	b.residue = rk
	b.residueIndex = b.s.Residues.Add(store.ResidueRow{
		ChainIndex: b.chainIndex,
		AtomOffset: b.s.Atoms.Count,
		ResNo:      rk.resNo,
		SStruc:     sstruc,
		InsCode:    rk.insCode,
	})
	b.residuePending = true
	b.s.Chains.ResidueCount.Data[b.chainIndex]++
	return nil
}

func (b *Builder) finishResidue() error {
	if !b.residuePending {
		return nil
	}
	b.residuePending = false

	residueTypeID, err := b.s.ResidueTypes.Add(b.residue.resName, b.residueAtomTypes, b.residue.hetero)
	if err != nil {
		return err
	}
	b.s.Residues.ResidueTypeID.Data[b.residueIndex] = residueTypeID
	b.residueAtomTypes = b.residueAtomTypes[:0]
	return nil
}
