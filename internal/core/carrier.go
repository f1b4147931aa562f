package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"labware-import/internal/shared"
	"labware-import/internal/types"
)

func (a Assembler) readCarrier(ctx context.Context, path string, layout SiteLayout) (types.Carrier, string, error) {
	rec, err := a.readRecord(path)
	if err != nil {
		return types.Carrier{}, "", err
	}
	sites, err := ExtractSites(rec, layout)
	if err != nil {
		return types.Carrier{}, "", err
	}
	dims, err := readDimensions(rec)
	if err != nil {
		return types.Carrier{}, "", err
	}
	description, err := rec.String("Description")
	if err != nil {
		return types.Carrier{}, "", err
	}
	model := shared.ModelName(path)
	log.Ctx(ctx).Debug().
		Str("model", model).
		Int("sites", len(sites)).
		Msg("carrier sites extracted")
	return types.Carrier{
		Name:  model,
		Model: model,
		SizeX: dims.X,
		SizeY: dims.Y,
		SizeZ: dims.Z,
		Sites: types.NewCarrierSites(sites),
	}, description, nil
}

func (a Assembler) PlateCarrierForWriting(ctx context.Context, path string) (*types.PlateCarrier, string, error) {
	carrier, description, err := a.readCarrier(ctx, path, StandardSiteLayout)
	if err != nil {
		return nil, "", err
	}
	return &types.PlateCarrier{Carrier: carrier}, description, nil
}

func (a Assembler) PlateCarrier(ctx context.Context, path string, name string) (*types.PlateCarrier, error) {
	carrier, _, err := a.PlateCarrierForWriting(ctx, path)
	if err != nil {
		return nil, err
	}
	carrier.Rename(name)
	return carrier, nil
}

func (a Assembler) TipCarrierForWriting(ctx context.Context, path string) (*types.TipCarrier, string, error) {
	carrier, description, err := a.readCarrier(ctx, path, StandardSiteLayout)
	if err != nil {
		return nil, "", err
	}
	return &types.TipCarrier{Carrier: carrier}, description, nil
}

func (a Assembler) TipCarrier(ctx context.Context, path string, name string) (*types.TipCarrier, error) {
	carrier, _, err := a.TipCarrierForWriting(ctx, path)
	if err != nil {
		return nil, err
	}
	carrier.Rename(name)
	return carrier, nil
}

// FlexCarrierForWriting assembles a multi-function carrier. Only sites marked
// visible are kept.
func (a Assembler) FlexCarrierForWriting(ctx context.Context, path string) (*types.MFXCarrier, string, error) {
	carrier, description, err := a.readCarrier(ctx, path, FlexSiteLayout)
	if err != nil {
		return nil, "", err
	}
	return &types.MFXCarrier{Carrier: carrier}, description, nil
}

func (a Assembler) FlexCarrier(ctx context.Context, path string, name string) (*types.MFXCarrier, error) {
	carrier, _, err := a.FlexCarrierForWriting(ctx, path)
	if err != nil {
		return nil, err
	}
	carrier.Rename(name)
	return carrier, nil
}
