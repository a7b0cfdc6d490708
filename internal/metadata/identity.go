package metadata

import (
	"strings"

	"github.com/google/uuid"
)

// NamespaceDatasetIdentity is the fixed UUID namespace for dataset
// identifiers, derived from "github.com/vvka-141/croissant/dataset-identity/v1"
// with the URL namespace.
var NamespaceDatasetIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("github.com/vvka-141/croissant/dataset-identity/v1"))

// DatasetIdentifier returns a deterministic urn:uuid identifier for a dataset
// whose content hashes to sha256Hex. Identical content always yields the same
// identifier; the hash is compared case-insensitively.
func DatasetIdentifier(sha256Hex string) string {
	id := uuid.NewSHA1(NamespaceDatasetIdentity, []byte(strings.ToLower(sha256Hex)))
	return "urn:uuid:" + id.String()
}
