// Package variables - Closed variable vocabularies
// The geometry and derived vocabularies are fixed: formula operands are
// validated against them at catalog load time so unresolvable references
// are caught at the boundary instead of deep inside formula evaluation.
package variables

// geometryNames is the closed vocabulary of raw building-geometry
// variables, keyed by the field names of the building intake form.
var geometryNames = makeSet([]string{
	// Basis
	"typeFlat",
	"isGrondgebonden",
	"isPortiekflat",
	"isGalerieflat",
	"breed",
	"diepte",
	"goothoogte",
	"zadeldak",
	"aantalWoningen",
	"hoogte",

	// Deuren
	"voordeur_breedte",
	"voordeur_hoogte",
	"achterdeur_breedte",
	"achterdeur_hoogte",

	// Woonkamer
	"woonkamer_raam1_breedte",
	"woonkamer_raam1_hoogte",
	"woonkamer_raam2_breedte",
	"woonkamer_raam2_hoogte",
	"woonkamer_raam3_breedte",
	"woonkamer_raam3_hoogte",
	"woonkamer_breedte",
	"woonkamer_lengte",

	// Woonkamer 2
	"woonkamer2_raam1_breedte",
	"woonkamer2_raam1_hoogte",
	"woonkamer2_raam2_breedte",
	"woonkamer2_raam2_hoogte",
	"woonkamer2_raam3_breedte",
	"woonkamer2_raam3_hoogte",

	// Slaapkamer 1
	"slaapkamer1_raam1_breedte",
	"slaapkamer1_raam1_hoogte",
	"slaapkamer1_raam2_breedte",
	"slaapkamer1_raam2_hoogte",
	"slaapkamer1_breedte",
	"slaapkamer1_lengte",

	// Slaapkamer 1 (2)
	"slaapkamer1_2_raam1_breedte",
	"slaapkamer1_2_raam1_hoogte",

	// Slaapkamer 2
	"slaapkamer2_raam1_breedte",
	"slaapkamer2_raam1_hoogte",
	"slaapkamer2_raam2_breedte",
	"slaapkamer2_raam2_hoogte",
	"slaapkamer2_breedte",
	"slaapkamer2_lengte",

	// Overige kamers
	"achterkamer_breedte",
	"achterkamer_lengte",
	"slaapkamer3_breedte",
	"slaapkamer3_lengte",
	"keuken_breedte",
	"keuken_lengte",
	"badkamer_breedte",
	"badkamer_lengte",
	"hal_breedte",
	"hal_lengte",
	"toilet_breedte",
	"toilet_lengte",
})

// derivedNames is the closed vocabulary of aggregate calculation variables
// computed upstream from the building geometry.
var derivedNames = makeSet([]string{
	// Basis
	"breedte",
	"diepte",
	"gootHoogte",
	"nokHoogte",
	"aantalWoningen",
	"heeftPlatDak",
	"bouwlagen",
	"breedteComplex",
	"kopgevels",
	"portieken",
	"breedteWoningPlusHoogte",

	// Gevel
	"gevelOppervlakVoor",
	"gevelOppervlakAchter",
	"gevelOppervlakTotaal",
	"gevelOppervlakNetto",
	"brutoKopgevelOppervlak",

	// Dak
	"dakOppervlak",
	"dakOppervlakTotaal",
	"dakLengte",
	"dakLengteTotaal",
	"dakOverstekOppervlak",
	"dakTotaalMetOverhang",
	"lengteDakvlak",
	"lengteDakvlakPlusBreedteWoning",

	// Vloer
	"vloerOppervlak",
	"vloerOppervlakTotaal",
	"vloerOppervlakteBeganeGrond",
	"oppervlakteKelder",

	// Kozijnen
	"kozijnOppervlakVoorTotaal",
	"kozijnOppervlakAchterTotaal",
	"kozijnOppervlakTotaal",
	"kozijnRendementTotaal",
	"kozijnOmtrekTotaal",
	"kozijnOppervlakteWoning",
	"glasOppervlakteWoning",

	// Kozijnen per maatklasse
	"kozijn05",
	"kozijn10",
	"kozijn15",
	"kozijn20",
	"kozijn25",
	"kozijn30",
	"kozijn35",
	"kozijn40",

	// Omtrekken
	"vensterbankLengte",
	"vensterbankLengteTotaal",
	"omtrekVoordeur",
	"omtrekAchterdeur",
	"omtrekKozijnen",
	"omtrekDraaidelen",

	// Plinten
	"vloerplintLengte",
	"vloerplintLengteTotaal",
	"omtrekSandwichElementen",

	// Kamers
	"oppervlakteHal",
	"aantalSlaapkamers",

	// Ventilatie
	"zrRooster",
	"zrRoosterLengte",

	// PV-panelen
	"aantalPVPanelenGGB",
	"oppervlaktePVPanelenGGB",
	"aantalPVPanelenKop",
	"oppervlaktePVPanelenKop",
	"aantalPVPanelenLangs",
	"oppervlaktePVPanelenLangs",

	// Projecttotalen
	"projectGevelOppervlak",
	"projectKozijnenOppervlak",
	"projectDakOppervlak",
	"projectOmtrek",
})

// aliases maps legacy variable names to their current equivalents.
// Consulted after both namespaces fail, before reporting an unknown name.
var aliases = map[string]string{
	"AantalWoningen":              "aantalWoningen",
	"Dakoppervlak":                "dakOppervlak",
	"LengteDakvlak":               "lengteDakvlak",
	"BreedteWoning":               "breedte",
	"NettoGevelOppervlak":         "gevelOppervlakNetto",
	"Hoogte":                      "hoogte",
	"VensterbankLengte":           "vensterbankLengte",
	"VloerOppervlakteBeganeGrond": "vloerOppervlakteBeganeGrond",
	"OmtrekKozijnen":              "omtrekKozijnen",
}

func makeSet(names []string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// IsGeometryName reports whether the name belongs to the geometry vocabulary
func IsGeometryName(name string) bool {
	_, ok := geometryNames[name]
	return ok
}

// IsDerivedName reports whether the name belongs to the derived vocabulary
func IsDerivedName(name string) bool {
	_, ok := derivedNames[name]
	return ok
}

// CanonicalAlias returns the current name for a legacy alias
func CanonicalAlias(name string) (string, bool) {
	canonical, ok := aliases[name]
	return canonical, ok
}
