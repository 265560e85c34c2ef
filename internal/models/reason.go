package models

// Reason maps a reason code to the legal justification printed on the attestation
type Reason struct {
	Code string `json:"code" yaml:"code"`
	Text string `json:"text" yaml:"text"`
}

// DefaultReasons is the built-in reason table, in the order it is presented to clients.
// Adding a reason means adding an entry here (or shipping a REASONS_FILE).
var DefaultReasons = []Reason{
	{
		Code: "Convocation",
		Text: "Convocation judiciaire ou administrative et pour se rendre dans un service public",
	},
	{
		Code: "Missions",
		Text: "Participation à des missions d'intérêt général sur demande de l'autorité administrative",
	},
	{
		Code: "Handicap",
		Text: "Déplacement des personnes en situation de handicap et leur accompagnant.",
	},
	{
		Code: "Santé",
		Text: "Consultations, examens et soins ne pouvant être assurés à distance et l’achat de médicaments.",
	},
	{
		Code: "Enfants",
		Text: "Déplacement pour chercher les enfants à l’école et à l’occasion de leurs activités périscolaires",
	},
	{
		Code: "Famille",
		Text: "Déplacements pour motif familial impérieux, pour l'assistance aux personnes vulnérables et précaires ou la garde d'enfants.",
	},
	{
		Code: "Sports et animaux",
		Text: "Déplacements brefs, dans la limite d'une heure quotidienne et dans un rayon maximal d'un kilomètre autour du domicile, liés soit à l'activité physique individuelle des personnes, à l'exclusion de toute pratique sportive collective et de toute proximité avec d'autres personnes, soit à la promenade avec les seules personnes regroupées dans un même domicile, soit aux besoins des animaux de compagnie.",
	},
	{
		Code: "Travail",
		Text: "Déplacements entre le domicile et le lieu d’exercice de l’activité professionnelle ou un établissement d’enseignement ou de formation, déplacements professionnels ne pouvant être différés, déplacements pour un concours ou un examen.",
	},
	{
		Code: "Achats",
		Text: "Déplacements pour effectuer des achats de fournitures nécessaires à l'activité professionnelle, des achats de première nécessité dans des établissements dont les activités demeurent autorisées, le retrait de commande et les livraisons à domicile.",
	},
}

// ReasonsResponse lists the reasons accepted by the API
type ReasonsResponse struct {
	Reasons []Reason `json:"reasons"`
}
