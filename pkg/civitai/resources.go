package civitai

import "time"

// Model represents a published model in the platform catalog.
type Model struct {
	ID          int       `json:"id"                    yaml:"id"`
	Name        string    `json:"name"                  yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Type        ModelType `json:"type"                  yaml:"type"`
	NSFW        bool      `json:"nsfw"                  yaml:"nsfw"`
	// Mode is present only on archived or taken-down models.
	Mode                  *ModelMode      `json:"mode,omitempty"               yaml:"mode,omitempty"`
	Tags                  []string        `json:"tags,omitempty"               yaml:"tags,omitempty"`
	Creator               *CreatorRef     `json:"creator,omitempty"            yaml:"creator,omitempty"`
	Stats                 *ModelStats     `json:"stats,omitempty"              yaml:"stats,omitempty"`
	AllowNoCredit         bool            `json:"allowNoCredit"                yaml:"allowNoCredit"`
	AllowCommercialUse    []CommercialUse `json:"allowCommercialUse,omitempty" yaml:"allowCommercialUse,omitempty"`
	AllowDerivatives      bool            `json:"allowDerivatives"             yaml:"allowDerivatives"`
	AllowDifferentLicense bool            `json:"allowDifferentLicense"        yaml:"allowDifferentLicense"`
	ModelVersions         []ModelVersion  `json:"modelVersions,omitempty"      yaml:"modelVersions,omitempty"`
}

// ModelStats represents aggregate engagement counters on a model.
type ModelStats struct {
	DownloadCount int     `json:"downloadCount" yaml:"downloadCount"`
	FavoriteCount int     `json:"favoriteCount" yaml:"favoriteCount"`
	CommentCount  int     `json:"commentCount"  yaml:"commentCount"`
	RatingCount   int     `json:"ratingCount"   yaml:"ratingCount"`
	Rating        float64 `json:"rating"        yaml:"rating"`
}

// CreatorRef identifies the creator embedded in a model payload.
type CreatorRef struct {
	Username string  `json:"username"        yaml:"username"`
	Image    *string `json:"image,omitempty" yaml:"image,omitempty"`
}

// ModelVersion represents one downloadable version of a model.
type ModelVersion struct {
	ID          int        `json:"id"                    yaml:"id"`
	ModelID     int        `json:"modelId,omitempty"     yaml:"modelId,omitempty"`
	Name        string     `json:"name"                  yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	BaseModel   string     `json:"baseModel,omitempty"   yaml:"baseModel,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"   yaml:"createdAt,omitempty"`
	// Model carries a summary of the parent when the version is fetched
	// directly rather than embedded in a model payload.
	Model                *ModelVersionParent `json:"model,omitempty"                yaml:"model,omitempty"`
	TrainedWords         []string            `json:"trainedWords,omitempty"         yaml:"trainedWords,omitempty"`
	DownloadURL          string              `json:"downloadUrl,omitempty"          yaml:"downloadUrl,omitempty"`
	Files                []ModelFile         `json:"files,omitempty"                yaml:"files,omitempty"`
	Images               []VersionImage      `json:"images,omitempty"               yaml:"images,omitempty"`
	Stats                *ModelVersionStats  `json:"stats,omitempty"                yaml:"stats,omitempty"`
	EarlyAccessTimeFrame int                 `json:"earlyAccessTimeFrame,omitempty" yaml:"earlyAccessTimeFrame,omitempty"`
}

// ModelVersionParent summarizes the model a directly fetched version belongs to.
type ModelVersionParent struct {
	Name string    `json:"name" yaml:"name"`
	Type ModelType `json:"type" yaml:"type"`
	NSFW bool      `json:"nsfw" yaml:"nsfw"`
}

// ModelVersionStats represents engagement counters on a model version.
type ModelVersionStats struct {
	DownloadCount int     `json:"downloadCount" yaml:"downloadCount"`
	RatingCount   int     `json:"ratingCount"   yaml:"ratingCount"`
	Rating        float64 `json:"rating"        yaml:"rating"`
}

// ModelFile represents a downloadable artifact attached to a model version.
type ModelFile struct {
	Name        string            `json:"name"                  yaml:"name"`
	SizeKB      float64           `json:"sizeKB"                yaml:"sizeKB"`
	Type        string            `json:"type,omitempty"        yaml:"type,omitempty"`
	Primary     bool              `json:"primary,omitempty"     yaml:"primary,omitempty"`
	DownloadURL string            `json:"downloadUrl,omitempty" yaml:"downloadUrl,omitempty"`
	Metadata    *FileMetadata     `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
	Hashes      map[string]string `json:"hashes,omitempty"      yaml:"hashes,omitempty"`
	// Virus/pickle scan outcomes as reported by the platform scanner.
	PickleScanResult string     `json:"pickleScanResult,omitempty" yaml:"pickleScanResult,omitempty"`
	VirusScanResult  string     `json:"virusScanResult,omitempty"  yaml:"virusScanResult,omitempty"`
	ScannedAt        *time.Time `json:"scannedAt,omitempty"        yaml:"scannedAt,omitempty"`
}

// FileMetadata describes the precision, size variant, and format of a file.
type FileMetadata struct {
	FP     string      `json:"fp,omitempty"     yaml:"fp,omitempty"`
	Size   string      `json:"size,omitempty"   yaml:"size,omitempty"`
	Format *FileFormat `json:"format,omitempty" yaml:"format,omitempty"`
}

// VersionImage represents a preview image embedded in a model version.
type VersionImage struct {
	URL    string `json:"url"            yaml:"url"`
	NSFW   bool   `json:"nsfw"           yaml:"nsfw"`
	Width  int    `json:"width"          yaml:"width"`
	Height int    `json:"height"         yaml:"height"`
	Hash   string `json:"hash,omitempty" yaml:"hash,omitempty"`
}

// Creator represents an account that has published models.
type Creator struct {
	Username   string  `json:"username"         yaml:"username"`
	ModelCount int     `json:"modelCount"       yaml:"modelCount"`
	Link       string  `json:"link,omitempty"   yaml:"link,omitempty"`
	Image      *string `json:"image,omitempty"  yaml:"image,omitempty"`
}

// Tag represents a catalog tag and how many models carry it.
type Tag struct {
	Name       string `json:"name"           yaml:"name"`
	ModelCount int    `json:"modelCount"     yaml:"modelCount"`
	Link       string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Image represents a community image in the gallery.
type Image struct {
	ID        int         `json:"id"                  yaml:"id"`
	URL       string      `json:"url"                 yaml:"url"`
	Hash      string      `json:"hash,omitempty"      yaml:"hash,omitempty"`
	Width     int         `json:"width"               yaml:"width"`
	Height    int         `json:"height"              yaml:"height"`
	NSFW      bool        `json:"nsfw"                yaml:"nsfw"`
	NSFWLevel NSFWLevel   `json:"nsfwLevel"           yaml:"nsfwLevel"`
	CreatedAt *time.Time  `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	PostID    int         `json:"postId,omitempty"    yaml:"postId,omitempty"`
	Username  string      `json:"username,omitempty"  yaml:"username,omitempty"`
	Stats     *ImageStats `json:"stats,omitempty"     yaml:"stats,omitempty"`
	// Meta holds the generation parameters as a free-form map; its shape
	// varies by generator and is passed through undecoded.
	Meta map[string]interface{} `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// ImageStats represents reaction counters on an image.
type ImageStats struct {
	CryCount     int `json:"cryCount"     yaml:"cryCount"`
	LaughCount   int `json:"laughCount"   yaml:"laughCount"`
	LikeCount    int `json:"likeCount"    yaml:"likeCount"`
	HeartCount   int `json:"heartCount"   yaml:"heartCount"`
	CommentCount int `json:"commentCount" yaml:"commentCount"`
}
