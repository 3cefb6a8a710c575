// Package pointid joins the catalog's document identifiers to the vector
// index, which only accepts numeric or UUID point ids.
package pointid

import "github.com/google/uuid"

// FromProductID maps a product's ObjectID hex string onto a UUID v5 in the
// DNS namespace. The derivation is the only link between the two id
// spaces, so it must stay stable: the embedding pipeline and every reader
// derive the same point id from the same product.
func FromProductID(idHex string) string {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(idHex)).String()
}
