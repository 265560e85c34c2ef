package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-attestation/internal/models"
)

const (
	attestationTitle = "ATTESTATION DE DÉPLACEMENT DÉROGATOIRE"

	decreeReference = "décret n°2020-1310 du 29 octobre 2020 prescrivant les mesures générales nécessaires " +
		"pour faire face à l'épidémie de Covid19 dans le cadre de l'état d'urgence sanitaire"
)

// ComposeDocument fills the attestation template. It is pure: the same inputs always
// produce the same body. The timestamp is truncated to the minute.
func ComposeDocument(sub models.Submission, reasonText string, ts time.Time) models.AttestationDocument {
	grammar := sub.Sex.Grammar()
	issuedAt := ts.Truncate(time.Minute)

	var b strings.Builder
	b.WriteString(attestationTitle + "\n\n")
	b.WriteString("En application du " + decreeReference + "\n\n")
	fmt.Fprintf(&b, "Je soussigné%s,\n", grammar.Suffix)
	fmt.Fprintf(&b, "%s %s %s\n", grammar.Honorific, sub.FirstName, sub.LastName)
	fmt.Fprintf(&b, "Né%s le %s à %s\n", grammar.Suffix, sub.Birthday, sub.PlaceOfBirth)
	fmt.Fprintf(&b, "Demeurant : %s %s %s\n", sub.Address, sub.Postcode, sub.City)
	b.WriteString("certifie que mon déplacement est lié au motif suivant autorisé par le " + decreeReference + " :\n\n")
	b.WriteString(reasonText + "\n\n")
	fmt.Fprintf(&b, "Fait à %s\n", sub.City)
	fmt.Fprintf(&b, "Le %d/%d/%d à %d:%02d\n\n",
		issuedAt.Day(), int(issuedAt.Month()), issuedAt.Year(), issuedAt.Hour(), issuedAt.Minute())
	fmt.Fprintf(&b, "Signature : %s %s\n", sub.FirstName, sub.LastName)

	return models.AttestationDocument{
		Body:     b.String(),
		IssuedAt: issuedAt,
	}
}
