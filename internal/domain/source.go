package domain

import "containermap/internal/record"

// MsgBarcodeOrTypeIndicator is reported when a source container identifies
// its top container neither by barcode nor by type_1 and indicator_1.
const MsgBarcodeOrTypeIndicator = "You must specify a barcode or both of type_1 and indicator_1"

// SourceContainer is the incoming container description.
type SourceContainer struct {
	*record.Record
}

func NewSourceContainer() *SourceContainer {
	return &SourceContainer{record.New(SourceContainerSchema)}
}

// SourceContainerFrom builds a source container from raw field values.
// Empty values are treated as absent.
func SourceContainerFrom(values map[string]string) (*SourceContainer, error) {
	s := NewSourceContainer()
	if err := s.Load(values); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SourceContainer) Type1() string               { return s.Str(FieldType1) }
func (s *SourceContainer) Indicator1() string          { return s.Str(FieldIndicator1) }
func (s *SourceContainer) Barcode1() string            { return s.Str(FieldBarcode1) }
func (s *SourceContainer) Type2() string               { return s.Str(FieldType2) }
func (s *SourceContainer) Indicator2() string          { return s.Str(FieldIndicator2) }
func (s *SourceContainer) Type3() string               { return s.Str(FieldType3) }
func (s *SourceContainer) Indicator3() string          { return s.Str(FieldIndicator3) }
func (s *SourceContainer) ContainerExtent() string     { return s.Str(FieldContainerExtent) }
func (s *SourceContainer) ContainerExtentType() string { return s.Str(FieldContainerExtentType) }
func (s *SourceContainer) Series() string              { return s.Str(FieldSeries) }

func (s *SourceContainer) SetType1(v string) *SourceContainer      { return s.set(FieldType1, v) }
func (s *SourceContainer) SetIndicator1(v string) *SourceContainer { return s.set(FieldIndicator1, v) }
func (s *SourceContainer) SetBarcode1(v string) *SourceContainer   { return s.set(FieldBarcode1, v) }
func (s *SourceContainer) SetType2(v string) *SourceContainer      { return s.set(FieldType2, v) }
func (s *SourceContainer) SetIndicator2(v string) *SourceContainer { return s.set(FieldIndicator2, v) }
func (s *SourceContainer) SetType3(v string) *SourceContainer      { return s.set(FieldType3, v) }
func (s *SourceContainer) SetIndicator3(v string) *SourceContainer { return s.set(FieldIndicator3, v) }
func (s *SourceContainer) SetContainerExtent(v string) *SourceContainer {
	return s.set(FieldContainerExtent, v)
}
func (s *SourceContainer) SetContainerExtentType(v string) *SourceContainer {
	return s.set(FieldContainerExtentType, v)
}
func (s *SourceContainer) SetSeries(v string) *SourceContainer { return s.set(FieldSeries, v) }

func (s *SourceContainer) set(field, v string) *SourceContainer {
	s.Set(field, v)
	return s
}

// Validate runs the required-field check, then requires either barcode_1 or
// both type_1 and indicator_1. A violation is reported against all three.
func (s *SourceContainer) Validate() record.ValidationErrors {
	errs := record.ValidateRequired(s.Record)
	if s.Barcode1() != "" || (s.Type1() != "" && s.Indicator1() != "") {
		return errs
	}
	for _, f := range []string{FieldBarcode1, FieldType1, FieldIndicator1} {
		errs = append(errs, record.FieldError{
			Field:   f,
			Message: MsgBarcodeOrTypeIndicator,
			Kind:    record.StructuralConstraintViolation,
		})
	}
	return errs
}
