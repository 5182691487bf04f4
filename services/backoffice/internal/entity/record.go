package entity

// Record is implemented by every content entity. The asset path is the
// public "/uploads/..." path of the record's image or logo, empty when the
// record has none.
type Record interface {
	RecordID() string
	AssetPath() string
	SetAssetPath(path string)
}

// RecordPtr constrains a type parameter to the pointer type of E.
type RecordPtr[E any] interface {
	*E
	Record
}

func assetPath(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func optionalPath(path string) *string {
	if path == "" {
		return nil
	}
	return &path
}
