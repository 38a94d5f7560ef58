package domain

import "containermap/internal/record"

// Subcontainer is the mapping target. It references, never copies, its top
// container.
type Subcontainer struct {
	*record.Record
}

func NewSubcontainer() *Subcontainer {
	return &Subcontainer{record.New(SubcontainerSchema)}
}

func (s *Subcontainer) TopContainer() *TopContainer {
	tc, _ := s.Get(FieldTopContainer).(*TopContainer)
	return tc
}

func (s *Subcontainer) SetTopContainer(tc *TopContainer) *Subcontainer {
	if tc == nil {
		s.Set(FieldTopContainer, nil)
	} else {
		s.Set(FieldTopContainer, tc)
	}
	return s
}

func (s *Subcontainer) Type2() string      { return s.Str(FieldType2) }
func (s *Subcontainer) Indicator2() string { return s.Str(FieldIndicator2) }
func (s *Subcontainer) Type3() string      { return s.Str(FieldType3) }
func (s *Subcontainer) Indicator3() string { return s.Str(FieldIndicator3) }

func (s *Subcontainer) SetType2(v string) *Subcontainer      { s.Set(FieldType2, v); return s }
func (s *Subcontainer) SetIndicator2(v string) *Subcontainer { s.Set(FieldIndicator2, v); return s }
func (s *Subcontainer) SetType3(v string) *Subcontainer      { s.Set(FieldType3, v); return s }
func (s *Subcontainer) SetIndicator3(v string) *Subcontainer { s.Set(FieldIndicator3, v); return s }

// TopContainer is a physical container that may be shared by many
// subcontainers.
type TopContainer struct {
	*record.Record
}

func NewTopContainer() *TopContainer {
	return &TopContainer{record.New(TopContainerSchema)}
}

// TopContainerFrom builds a top container from raw field values. An "id"
// entry marks it as persisted.
func TopContainerFrom(values map[string]string) (*TopContainer, error) {
	tc := NewTopContainer()
	if err := tc.Load(values); err != nil {
		return nil, err
	}
	return tc, nil
}

func (t *TopContainer) Indicator() string     { return t.Str(FieldIndicator) }
func (t *TopContainer) Barcode() string       { return t.Str(FieldBarcode) }
func (t *TopContainer) ILSHoldingID() string  { return t.Str(FieldILSHoldingID) }
func (t *TopContainer) ILSItemID() string     { return t.Str(FieldILSItemID) }
func (t *TopContainer) ExportedToILS() string { return t.Str(FieldExportedToILS) }
func (t *TopContainer) Series() string        { return t.Str(FieldSeries) }

func (t *TopContainer) ContainerProfile() *ContainerProfile {
	p, _ := t.Get(FieldContainerProfile).(*ContainerProfile)
	return p
}

func (t *TopContainer) SetIndicator(v string) *TopContainer     { t.Set(FieldIndicator, v); return t }
func (t *TopContainer) SetBarcode(v string) *TopContainer       { t.Set(FieldBarcode, v); return t }
func (t *TopContainer) SetILSHoldingID(v string) *TopContainer  { t.Set(FieldILSHoldingID, v); return t }
func (t *TopContainer) SetILSItemID(v string) *TopContainer     { t.Set(FieldILSItemID, v); return t }
func (t *TopContainer) SetExportedToILS(v string) *TopContainer { t.Set(FieldExportedToILS, v); return t }
func (t *TopContainer) SetSeries(v string) *TopContainer        { t.Set(FieldSeries, v); return t }

func (t *TopContainer) SetContainerProfile(p *ContainerProfile) *TopContainer {
	if p == nil {
		t.Set(FieldContainerProfile, nil)
	} else {
		t.Set(FieldContainerProfile, p)
	}
	return t
}

func (t *TopContainer) SetID(id record.ID) *TopContainer {
	t.Record.SetID(id)
	return t
}

// ContainerProfile describes the dimensions of a kind of container.
type ContainerProfile struct {
	*record.Record
}

func NewContainerProfile() *ContainerProfile {
	return &ContainerProfile{record.New(ContainerProfileSchema)}
}

// ContainerProfileFrom builds a profile from raw field values.
func ContainerProfileFrom(values map[string]string) (*ContainerProfile, error) {
	p := NewContainerProfile()
	if err := p.Load(values); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *ContainerProfile) Name() string            { return p.Str(FieldName) }
func (p *ContainerProfile) URL() string             { return p.Str(FieldURL) }
func (p *ContainerProfile) DimensionUnits() string  { return p.Str(FieldDimensionUnits) }
func (p *ContainerProfile) ExtentDimension() string { return p.Str(FieldExtentDimension) }
func (p *ContainerProfile) Height() string          { return p.Str(FieldHeight) }
func (p *ContainerProfile) Width() string           { return p.Str(FieldWidth) }
func (p *ContainerProfile) Depth() string           { return p.Str(FieldDepth) }

func (p *ContainerProfile) SetName(v string) *ContainerProfile { p.Set(FieldName, v); return p }
func (p *ContainerProfile) SetURL(v string) *ContainerProfile  { p.Set(FieldURL, v); return p }
func (p *ContainerProfile) SetDimensionUnits(v string) *ContainerProfile {
	p.Set(FieldDimensionUnits, v)
	return p
}
func (p *ContainerProfile) SetExtentDimension(v string) *ContainerProfile {
	p.Set(FieldExtentDimension, v)
	return p
}
func (p *ContainerProfile) SetHeight(v string) *ContainerProfile { p.Set(FieldHeight, v); return p }
func (p *ContainerProfile) SetWidth(v string) *ContainerProfile  { p.Set(FieldWidth, v); return p }
func (p *ContainerProfile) SetDepth(v string) *ContainerProfile  { p.Set(FieldDepth, v); return p }

func (p *ContainerProfile) SetID(id record.ID) *ContainerProfile {
	p.Record.SetID(id)
	return p
}
