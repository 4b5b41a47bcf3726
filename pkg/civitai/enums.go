package civitai

import (
	"encoding/json"
	"fmt"
)

// Enum type identities used as registry keys.
const (
	enumModelType     = "ModelType"
	enumModelSort     = "ModelSort"
	enumImageSort     = "ImageSort"
	enumPeriod        = "Period"
	enumCommercialUse = "CommercialUse"
	enumModelMode     = "ModelMode"
	enumNSFWLevel     = "NSFWLevel"
	enumFileFormat    = "FileFormat"
)

// ModelType represents the kind of a published model.
type ModelType string

// Model types.
const (
	ModelTypeCheckpoint        ModelType = "Checkpoint"
	ModelTypeTextualInversion  ModelType = "TextualInversion"
	ModelTypeHypernetwork      ModelType = "Hypernetwork"
	ModelTypeAestheticGradient ModelType = "AestheticGradient"
	ModelTypeLora              ModelType = "Lora"
	ModelTypeControlnet        ModelType = "Controlnet"
	ModelTypeUpscaler          ModelType = "Upscaler"
	ModelTypeVAE               ModelType = "VAE"
	ModelTypePoses             ModelType = "Poses"
	ModelTypeOther             ModelType = "Other"
)

// String returns the in-process representation of the ModelType.
func (t ModelType) String() string {
	return string(t)
}

// MarshalJSON implements json.Marshaler via the default registry.
func (t ModelType) MarshalJSON() ([]byte, error) {
	return marshalEnum(enumModelType, string(t))
}

// UnmarshalJSON implements json.Unmarshaler via the default registry.
func (t *ModelType) UnmarshalJSON(data []byte) error {
	variant, err := unmarshalEnum(enumModelType, data)
	if err != nil {
		return err
	}

	*t = ModelType(variant)

	return nil
}

// ModelSort represents the ordering of a model search.
type ModelSort string

// Model sort orders.
const (
	ModelSortHighestRated   ModelSort = "HighestRated"
	ModelSortMostDownloaded ModelSort = "MostDownloaded"
	ModelSortNewest         ModelSort = "Newest"
)

// String returns the in-process representation of the ModelSort.
func (s ModelSort) String() string {
	return string(s)
}

// ImageSort represents the ordering of an image search.
type ImageSort string

// Image sort orders.
const (
	ImageSortMostReactions ImageSort = "MostReactions"
	ImageSortMostComments  ImageSort = "MostComments"
	ImageSortNewest        ImageSort = "Newest"
)

// String returns the in-process representation of the ImageSort.
func (s ImageSort) String() string {
	return string(s)
}

// Period represents the time window a search or ranking is scoped to.
type Period string

// Periods.
const (
	PeriodAllTime Period = "AllTime"
	PeriodYear    Period = "Year"
	PeriodMonth   Period = "Month"
	PeriodWeek    Period = "Week"
	PeriodDay     Period = "Day"
)

// String returns the in-process representation of the Period.
func (p Period) String() string {
	return string(p)
}

// CommercialUse represents the commercial permissions granted by a model.
type CommercialUse string

// Commercial use permissions.
const (
	CommercialUseNone  CommercialUse = "None"
	CommercialUseImage CommercialUse = "Image"
	CommercialUseRent  CommercialUse = "Rent"
	CommercialUseSell  CommercialUse = "Sell"
)

// String returns the in-process representation of the CommercialUse.
func (c CommercialUse) String() string {
	return string(c)
}

// MarshalJSON implements json.Marshaler via the default registry.
func (c CommercialUse) MarshalJSON() ([]byte, error) {
	return marshalEnum(enumCommercialUse, string(c))
}

// UnmarshalJSON implements json.Unmarshaler via the default registry.
func (c *CommercialUse) UnmarshalJSON(data []byte) error {
	variant, err := unmarshalEnum(enumCommercialUse, data)
	if err != nil {
		return err
	}

	*c = CommercialUse(variant)

	return nil
}

// ModelMode represents a moderation state applied to a model.
type ModelMode string

// Model modes.
const (
	ModelModeArchived  ModelMode = "Archived"
	ModelModeTakenDown ModelMode = "TakenDown"
)

// String returns the in-process representation of the ModelMode.
func (m ModelMode) String() string {
	return string(m)
}

// MarshalJSON implements json.Marshaler via the default registry.
func (m ModelMode) MarshalJSON() ([]byte, error) {
	return marshalEnum(enumModelMode, string(m))
}

// UnmarshalJSON implements json.Unmarshaler via the default registry.
func (m *ModelMode) UnmarshalJSON(data []byte) error {
	variant, err := unmarshalEnum(enumModelMode, data)
	if err != nil {
		return err
	}

	*m = ModelMode(variant)

	return nil
}

// NSFWLevel represents the content rating of an image.
type NSFWLevel string

// NSFW levels.
const (
	NSFWLevelNone   NSFWLevel = "None"
	NSFWLevelSoft   NSFWLevel = "Soft"
	NSFWLevelMature NSFWLevel = "Mature"
	NSFWLevelX      NSFWLevel = "X"
)

// String returns the in-process representation of the NSFWLevel.
func (l NSFWLevel) String() string {
	return string(l)
}

// MarshalJSON implements json.Marshaler via the default registry.
func (l NSFWLevel) MarshalJSON() ([]byte, error) {
	return marshalEnum(enumNSFWLevel, string(l))
}

// UnmarshalJSON implements json.Unmarshaler via the default registry.
func (l *NSFWLevel) UnmarshalJSON(data []byte) error {
	variant, err := unmarshalEnum(enumNSFWLevel, data)
	if err != nil {
		return err
	}

	*l = NSFWLevel(variant)

	return nil
}

// FileFormat represents the serialization format of a model file.
type FileFormat string

// File formats.
const (
	FileFormatSafeTensor   FileFormat = "SafeTensor"
	FileFormatPickleTensor FileFormat = "PickleTensor"
	FileFormatOther        FileFormat = "Other"
)

// String returns the in-process representation of the FileFormat.
func (f FileFormat) String() string {
	return string(f)
}

// MarshalJSON implements json.Marshaler via the default registry.
func (f FileFormat) MarshalJSON() ([]byte, error) {
	return marshalEnum(enumFileFormat, string(f))
}

// UnmarshalJSON implements json.Unmarshaler via the default registry.
func (f *FileFormat) UnmarshalJSON(data []byte) error {
	variant, err := unmarshalEnum(enumFileFormat, data)
	if err != nil {
		return err
	}

	*f = FileFormat(variant)

	return nil
}

// RegisterSharedEnums registers wire mappings for enums used across resource
// families. Idempotent; safe to call from multiple initialization paths.
func RegisterSharedEnums(r *Registry) {
	r.MustRegister(enumPeriod, string(PeriodAllTime), "AllTime")
	r.MustRegister(enumPeriod, string(PeriodYear), "Year")
	r.MustRegister(enumPeriod, string(PeriodMonth), "Month")
	r.MustRegister(enumPeriod, string(PeriodWeek), "Week")
	r.MustRegister(enumPeriod, string(PeriodDay), "Day")

	r.MustRegister(enumNSFWLevel, string(NSFWLevelNone), "None")
	r.MustRegister(enumNSFWLevel, string(NSFWLevelSoft), "Soft")
	r.MustRegister(enumNSFWLevel, string(NSFWLevelMature), "Mature")
	r.MustRegister(enumNSFWLevel, string(NSFWLevelX), "X")
}

// RegisterModelEnums registers wire mappings for the models resource family.
// Idempotent; safe to call from multiple initialization paths.
func RegisterModelEnums(r *Registry) {
	r.MustRegister(enumModelType, string(ModelTypeCheckpoint), "Checkpoint")
	r.MustRegister(enumModelType, string(ModelTypeTextualInversion), "TextualInversion")
	r.MustRegister(enumModelType, string(ModelTypeHypernetwork), "Hypernetwork")
	r.MustRegister(enumModelType, string(ModelTypeAestheticGradient), "AestheticGradient")
	r.MustRegister(enumModelType, string(ModelTypeLora), "LORA")
	r.MustRegister(enumModelType, string(ModelTypeControlnet), "Controlnet")
	r.MustRegister(enumModelType, string(ModelTypeUpscaler), "Upscaler")
	r.MustRegister(enumModelType, string(ModelTypeVAE), "VAE")
	r.MustRegister(enumModelType, string(ModelTypePoses), "Poses")
	r.MustRegister(enumModelType, string(ModelTypeOther), "Other")

	r.MustRegister(enumModelSort, string(ModelSortHighestRated), "Highest Rated")
	r.MustRegister(enumModelSort, string(ModelSortMostDownloaded), "Most Downloaded")
	r.MustRegister(enumModelSort, string(ModelSortNewest), "Newest")

	r.MustRegister(enumCommercialUse, string(CommercialUseNone), "None")
	r.MustRegister(enumCommercialUse, string(CommercialUseImage), "Image")
	r.MustRegister(enumCommercialUse, string(CommercialUseRent), "Rent")
	r.MustRegister(enumCommercialUse, string(CommercialUseSell), "Sell")

	r.MustRegister(enumModelMode, string(ModelModeArchived), "Archived")
	r.MustRegister(enumModelMode, string(ModelModeTakenDown), "TakenDown")

	r.MustRegister(enumFileFormat, string(FileFormatSafeTensor), "SafeTensor")
	r.MustRegister(enumFileFormat, string(FileFormatPickleTensor), "PickleTensor")
	r.MustRegister(enumFileFormat, string(FileFormatOther), "Other")
}

// RegisterImageEnums registers wire mappings for the images resource family.
// Idempotent; safe to call from multiple initialization paths.
func RegisterImageEnums(r *Registry) {
	r.MustRegister(enumImageSort, string(ImageSortMostReactions), "Most Reactions")
	r.MustRegister(enumImageSort, string(ImageSortMostComments), "Most Comments")
	r.MustRegister(enumImageSort, string(ImageSortNewest), "Newest")
}

// ParseModelType maps a wire string (e.g. "LORA") to its ModelType.
func ParseModelType(wire string) (ModelType, error) {
	variant, err := DefaultRegistry().FromWire(enumModelType, wire)
	if err != nil {
		return "", err
	}

	return ModelType(variant), nil
}

// ParseModelSort maps a wire string (e.g. "Most Downloaded") to its ModelSort.
func ParseModelSort(wire string) (ModelSort, error) {
	variant, err := DefaultRegistry().FromWire(enumModelSort, wire)
	if err != nil {
		return "", err
	}

	return ModelSort(variant), nil
}

// ParseImageSort maps a wire string (e.g. "Most Reactions") to its ImageSort.
func ParseImageSort(wire string) (ImageSort, error) {
	variant, err := DefaultRegistry().FromWire(enumImageSort, wire)
	if err != nil {
		return "", err
	}

	return ImageSort(variant), nil
}

// ParsePeriod maps a wire string (e.g. "AllTime") to its Period.
func ParsePeriod(wire string) (Period, error) {
	variant, err := DefaultRegistry().FromWire(enumPeriod, wire)
	if err != nil {
		return "", err
	}

	return Period(variant), nil
}

// ParseNSFWLevel maps a wire string (e.g. "Soft") to its NSFWLevel.
func ParseNSFWLevel(wire string) (NSFWLevel, error) {
	variant, err := DefaultRegistry().FromWire(enumNSFWLevel, wire)
	if err != nil {
		return "", err
	}

	return NSFWLevel(variant), nil
}

// marshalEnum serializes a variant through the default registry. The zero
// value passes through unmapped so structs with absent enum fields still
// re-encode.
func marshalEnum(enumType, variant string) ([]byte, error) {
	if variant == "" {
		return json.Marshal("")
	}

	wire, err := DefaultRegistry().ToWire(enumType, variant)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", enumType, err)
	}

	return data, nil
}

// unmarshalEnum decodes a JSON string and maps it through the default
// registry. Unknown wire strings surface as an error wrapping
// ErrUnknownWireValue so decode paths can report them without losing the
// offending value. An empty wire string decodes to the zero value.
func unmarshalEnum(enumType string, data []byte) (string, error) {
	var wire string

	err := json.Unmarshal(data, &wire)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", enumType, err)
	}

	if wire == "" {
		return "", nil
	}

	return DefaultRegistry().FromWire(enumType, wire)
}
