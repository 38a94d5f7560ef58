package app

import (
	"fmt"

	"github.com/google/uuid"

	"containermap/internal/config"
	"containermap/internal/domain"
	"containermap/internal/record"
	"containermap/internal/repo"
)

// NewRepo populates a lookup store from the config fixtures. Profiles are
// loaded first so top containers can reference them by name. Fixtures without
// an id get a deterministic one, since everything in the store is persisted.
func NewRepo(cfg *config.Config) (*repo.Repo, error) {
	r := repo.New()
	if cfg == nil {
		return r, nil
	}
	for _, f := range cfg.Store.ContainerProfiles {
		p, err := domain.ContainerProfileFrom(map[string]string{
			domain.FieldName:            f.Name,
			domain.FieldURL:             f.URL,
			domain.FieldDimensionUnits:  f.DimensionUnits,
			domain.FieldExtentDimension: f.ExtentDimension,
			domain.FieldHeight:          f.Height,
			domain.FieldWidth:           f.Width,
			domain.FieldDepth:           f.Depth,
		})
		if err != nil {
			return nil, err
		}
		p.SetID(fixtureID(f.ID, "container_profile", f.Name))
		if errs := p.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("container profile %s: %w", f.Name, errs)
		}
		r.AddContainerProfile(p)
	}
	for _, f := range cfg.Store.TopContainers {
		tc, err := domain.TopContainerFrom(map[string]string{
			domain.FieldIndicator:     f.Indicator,
			domain.FieldBarcode:       f.Barcode,
			domain.FieldILSHoldingID:  f.ILSHoldingID,
			domain.FieldILSItemID:     f.ILSItemID,
			domain.FieldExportedToILS: f.ExportedToILS,
			domain.FieldSeries:        f.Series,
		})
		if err != nil {
			return nil, err
		}
		tc.SetID(fixtureID(f.ID, "top_container", f.Series, f.Barcode, f.Indicator))
		if f.ContainerProfile != "" {
			p, ok := r.FindContainerProfileByName(f.ContainerProfile)
			if !ok {
				return nil, fmt.Errorf("top container %s: container profile %s: %w", tc.ID(), f.ContainerProfile, repo.ErrNotFound)
			}
			tc.SetContainerProfile(p)
		}
		if errs := tc.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("top container %s: %w", tc.ID(), errs)
		}
		r.AddTopContainer(tc)
	}
	return r, nil
}

func fixtureID(id, kind string, keys ...string) record.ID {
	if id != "" {
		return record.Persisted(id)
	}
	name := kind
	for _, k := range keys {
		name += "|" + k
	}
	return record.Persisted(uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String())
}

// SampleSource builds the source container of a named config sample.
func SampleSource(cfg *config.Config, name string) (*domain.SourceContainer, error) {
	s, ok := cfg.Sample(name)
	if !ok {
		return nil, fmt.Errorf("sample %s: %w", name, repo.ErrNotFound)
	}
	return domain.SourceContainerFrom(s.Fields)
}
