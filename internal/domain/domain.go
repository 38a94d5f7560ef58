// Package domain defines the container records the mapper reads and writes.
package domain

import "containermap/internal/record"

const (
	FieldType1               = "type_1"
	FieldIndicator1          = "indicator_1"
	FieldBarcode1            = "barcode_1"
	FieldType2               = "type_2"
	FieldIndicator2          = "indicator_2"
	FieldType3               = "type_3"
	FieldIndicator3          = "indicator_3"
	FieldContainerExtent     = "container_extent"
	FieldContainerExtentType = "container_extent_type"
	FieldSeries              = "series"

	FieldTopContainer = "top_container"

	FieldIndicator        = "indicator"
	FieldBarcode          = "barcode"
	FieldILSHoldingID     = "ils_holding_id"
	FieldILSItemID        = "ils_item_id"
	FieldExportedToILS    = "exported_to_ils"
	FieldContainerProfile = "container_profile"

	FieldName            = "name"
	FieldURL             = "url"
	FieldDimensionUnits  = "dimension_units"
	FieldExtentDimension = "extent_dimension"
	FieldHeight          = "height"
	FieldWidth           = "width"
	FieldDepth           = "depth"
)

var (
	SourceContainerSchema = record.NewSchema("source_container",
		record.Field{Name: FieldType1},
		record.Field{Name: FieldIndicator1},
		record.Field{Name: FieldBarcode1},
		record.Field{Name: FieldType2},
		record.Field{Name: FieldIndicator2},
		record.Field{Name: FieldType3},
		record.Field{Name: FieldIndicator3},
		record.Field{Name: FieldContainerExtent},
		record.Field{Name: FieldContainerExtentType},
		record.Field{Name: FieldSeries},
	)

	SubcontainerSchema = record.NewSchema("subcontainer",
		record.Field{Name: FieldTopContainer, Required: true, Relation: true},
		record.Field{Name: FieldType2},
		record.Field{Name: FieldIndicator2},
		record.Field{Name: FieldType3},
		record.Field{Name: FieldIndicator3},
	)

	TopContainerSchema = record.NewSchema("top_container",
		record.Field{Name: FieldIndicator, Required: true},
		record.Field{Name: FieldBarcode},
		record.Field{Name: FieldILSHoldingID},
		record.Field{Name: FieldILSItemID},
		record.Field{Name: FieldExportedToILS},
		record.Field{Name: FieldContainerProfile, Relation: true},
		record.Field{Name: FieldSeries},
	)

	ContainerProfileSchema = record.NewSchema("container_profile",
		record.Field{Name: FieldName, Required: true},
		record.Field{Name: FieldURL},
		record.Field{Name: FieldDimensionUnits, Required: true},
		record.Field{Name: FieldExtentDimension, Required: true},
		record.Field{Name: FieldHeight, Required: true},
		record.Field{Name: FieldWidth, Required: true},
		record.Field{Name: FieldDepth, Required: true},
	)
)
