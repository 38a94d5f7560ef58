// Package repo holds the in-memory reference data the mapping rules consult.
package repo

import (
	"errors"

	"containermap/internal/domain"
)

var ErrNotFound = errors.New("not found")

// Repo is an in-memory collection of top containers and container profiles.
// It is populated before mapping starts; lookups scan in insertion order and
// the first match wins. Concurrent reads are safe, writes are not.
type Repo struct {
	topContainers     []*domain.TopContainer
	containerProfiles []*domain.ContainerProfile
}

func New() *Repo {
	return &Repo{}
}

func (r *Repo) AddTopContainer(tc *domain.TopContainer) {
	r.topContainers = append(r.topContainers, tc)
}

func (r *Repo) AddContainerProfile(p *domain.ContainerProfile) {
	r.containerProfiles = append(r.containerProfiles, p)
}

// FindTopContainerByBarcode returns the first top container whose barcode
// equals barcode.
func (r *Repo) FindTopContainerByBarcode(barcode string) (*domain.TopContainer, bool) {
	for _, tc := range r.topContainers {
		if tc.Barcode() == barcode {
			return tc, true
		}
	}
	return nil, false
}

// FindContainerProfileByName returns the first profile whose name equals name.
func (r *Repo) FindContainerProfileByName(name string) (*domain.ContainerProfile, bool) {
	for _, p := range r.containerProfiles {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// FindTopContainerBySeriesAndIndicator returns the first top container whose
// series and indicator both equal the arguments. Absent values only match
// absent values.
func (r *Repo) FindTopContainerBySeriesAndIndicator(series, indicator string) (*domain.TopContainer, bool) {
	for _, tc := range r.topContainers {
		if tc.Series() == series && tc.Indicator() == indicator {
			return tc, true
		}
	}
	return nil, false
}

// TopContainers returns the stored top containers in insertion order.
func (r *Repo) TopContainers() []*domain.TopContainer {
	out := make([]*domain.TopContainer, len(r.topContainers))
	copy(out, r.topContainers)
	return out
}

// ContainerProfiles returns the stored profiles in insertion order.
func (r *Repo) ContainerProfiles() []*domain.ContainerProfile {
	out := make([]*domain.ContainerProfile, len(r.containerProfiles))
	copy(out, r.containerProfiles)
	return out
}

func (r *Repo) GetTopContainer(id string) (*domain.TopContainer, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	for _, tc := range r.topContainers {
		if v, ok := tc.ID().Value(); ok && v == id {
			return tc, nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repo) GetContainerProfile(id string) (*domain.ContainerProfile, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	for _, p := range r.containerProfiles {
		if v, ok := p.ID().Value(); ok && v == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}
