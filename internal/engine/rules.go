package engine

import "containermap/internal/domain"

// DefaultIndicator is used for a top container created from a barcode when
// the source has no indicator_1.
const DefaultIndicator = "1"

// NewBarcodeRule links the subcontainer to the stored top container with
// barcode_1, or to a new one carrying that barcode.
func NewBarcodeRule() Rule {
	return barcodeRule{}
}

type barcodeRule struct{}

func (barcodeRule) Description() string {
	return "If the barcode_1 is set and matches an existing top container's barcode, link to that top_container. " +
		"Otherwise, create a new top container and use that. " +
		"If indicator_1 is missing, assume a value of '1' when creating the top container."
}

func (barcodeRule) Apply(src *domain.SourceContainer, dst *domain.Subcontainer, store Lookup) {
	barcode := src.Barcode1()
	if barcode == "" {
		return
	}
	if tc, ok := store.FindTopContainerByBarcode(barcode); ok {
		dst.SetTopContainer(tc)
		return
	}
	indicator := src.Indicator1()
	if indicator == "" {
		indicator = DefaultIndicator
	}
	dst.SetTopContainer(domain.NewTopContainer().SetBarcode(barcode).SetIndicator(indicator))
}

// NewSeriesIndicatorRule resolves the top container of a source without a
// barcode by matching series and indicator_1.
func NewSeriesIndicatorRule() Rule {
	return seriesIndicatorRule{}
}

type seriesIndicatorRule struct{}

func (seriesIndicatorRule) Description() string {
	return "If no barcode is present, find a top container whose indicator matches indicator_1 that is linked to the same series. " +
		"Failing that, create a new top container."
}

func (seriesIndicatorRule) Apply(src *domain.SourceContainer, dst *domain.Subcontainer, store Lookup) {
	if src.Barcode1() != "" {
		return
	}
	if tc, ok := store.FindTopContainerBySeriesAndIndicator(src.Series(), src.Indicator1()); ok {
		dst.SetTopContainer(tc)
		return
	}
	// Only the indicator is carried over; series stays unset.
	dst.SetTopContainer(domain.NewTopContainer().SetIndicator(src.Indicator1()))
}

// NewSubcontainerFieldsRule copies the level 2 and 3 type/indicator pairs.
func NewSubcontainerFieldsRule() Rule {
	return subcontainerFieldsRule{}
}

type subcontainerFieldsRule struct{}

func (subcontainerFieldsRule) Description() string {
	return "Map type_2/indicator_2/type_3/indicator_3 from the source container to the subcontainer"
}

func (subcontainerFieldsRule) Apply(src *domain.SourceContainer, dst *domain.Subcontainer, _ Lookup) {
	dst.SetType2(src.Type2()).
		SetIndicator2(src.Indicator2()).
		SetType3(src.Type3()).
		SetIndicator3(src.Indicator3())
}

// NewContainerProfileRule links a new, unlinked top container to the profile
// named by type_1. Persisted top containers are never relinked.
func NewContainerProfileRule() Rule {
	return containerProfileRule{}
}

type containerProfileRule struct{}

func (containerProfileRule) Description() string {
	return "When we create a new top container, if type_1 matches the name of a container profile, link to that container profile"
}

func (containerProfileRule) Apply(src *domain.SourceContainer, dst *domain.Subcontainer, store Lookup) {
	tc := dst.TopContainer()
	if tc == nil || tc.ContainerProfile() != nil || !tc.ID().IsNew() {
		return
	}
	name := src.Type1()
	if name == "" {
		return
	}
	if p, ok := store.FindContainerProfileByName(name); ok {
		tc.SetContainerProfile(p)
	}
}
