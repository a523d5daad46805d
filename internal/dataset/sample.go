package dataset

import "github.com/hemolab/peptox/internal/peptide"

// Built-in literature dataset: hemolytic/cytotoxic peptides (melittin
// variants, cytolytic AMPs) against therapeutic low-hemolysis peptides
// (insulin chains, GLP-1 analogs, designed safe AMPs). Lets the pipeline run
// without any downloaded databases.

var sampleToxic = []string{
	"GIGAVLKVLTTGLPALISWIKRKRQQ",
	"GIGAILKVLATGLPTLISWIKNKRKQ",
	"GIGKFLHSAGKFGKAFVGQIMNS",
	"KWKLFKKIGAVLKVL",
	"KWKLFKKIGIGAVLKVLTTGLPALIS",
	"KLAKKLAKLAKKLAKL",
	"KWKKWKKWKKWK",
	"FLGALFKALSKLL",
	"KLAKLAKKLAKLAK",
	"KLALKLALKALKAALKLA",
	"FKCRRWQWRMKKLGAPSITCVRRAF",
	"GIGKFLKKAKKFGKAFVKILKK",
	"KWKLFKKIEKVGQNIRDGIIKAGPAVAVVGQATQIAK",
	"GFGALIKGAAKFLGKALKGAK",
	"KFFKKLKNSVKKRAKKFFKKPKVIGVTFPF",
	"KLAKLAKKLAKLA",
	"FKRLKKLFKKIKNVL",
	"KLAKKLAKLAK",
	"KWKLFKKIGIGKFLQSAKKF",
	"GLFGAIAGFIENGWEGMIDGWYGC",
	"KFFRKLKKSVKKRAKEFFKKPRVIGVSIPF",
	"KWKSFIKKLTSAAKKVVTTAKPLISS",
	"GFGCNGPWSEDDIQCHNHCKSIKGYKGGYCARGGFVCKCY",
	"FLGALFKALKAAL",
	"KLAKLAKKLAKLAKLA",
	"KWKLFKKIEKVGQNI",
	"GIGAVLKVLTTGLPA",
	"KFFKKLKNSVKKRAK",
	"FLGALFKALSKLLKH",
	"KWKLFKKIGIGAVLKVLTTG",
	"KLAKKLAKLAKKLAKLAKKL",
	"GFGCNGPWSEDDIQC",
	"FKRLKKLFKKIKNVLQSAK",
	"KLAKLAKKLAKLAKLAK",
	"KWKLFKKIEKVGQNIRDGII",
	"GIGKFLKKAKKFGKAFVKI",
	"GLFGAIAGFIENGW",
	"KFFKKLKNSVKKRAKKFFK",
	"FLGALFKALSKLLKHGL",
	"KLAKLAKKLAKLAKKLA",
	"KWKSFIKKLTSAAKK",
	"GIGAVLKVLTTGLPALISWI",
	"KFFRKLKKSVKKRAKEFFK",
	"GFGCNGPWSEDDIQCHNHCK",
	"KLAKKLAKLAKKLAK",
	"KWKLFKKIGIGAVLK",
	"GIGKFLKKAKKFGKA",
	"FKRLKKLFKKIKNV",
	"GLFGAIAGFIENGWEGMI",
	"KFFKKLKNSVKKRAKKF",
	"KLAKLAKKLAKL",
}

var sampleNonToxic = []string{
	"GIVEQCCTSICSLYQLENYCN",
	"FVNQHLCGSHLVEALYLVCGERGFFYTPKT",
	"HAEGTFTSDVSSYLEGQAAKEFIAWLVKGR",
	"HDEFERHAEGTFTSDVSSYLEGQAAKEFIAWLVKGR",
	"GIGKFLHSAKKFGKAFVGEIMNS",
	"ILPWKWPWWPWRR",
	"RRRPRPPYLPRPRPPPFFPPRLPPRIPPGFPPRFPPRFP",
	"RWRWRWRW",
	"RRWRIVVIRVRR",
	"GIGAVLKVLTTGLPALISWIKRKRPP",
	"GFGCNKKCHRHCRRFC",
	"KRWWKWWRR",
	"GWLKKIKKWLKKIKKWLKK",
	"RRRPRPPYLPRPRPPPFFPPRLPP",
	"ILPWKWPWWPW",
	"DAEFRHDSGYEVHHQKLVFFAEDVGSNKGAIIGLMVGGVV",
	"GIGKHKNKKGKHNGWKWWW",
	"GFGCNKKCFRKC",
	"KRWRWRWRW",
	"GWLKKIKKWLK",
	"RRRPRPPYLPR",
	"ILPWKWPW",
	"GFGCNGPWDEDIQCHNHCK",
	"KRWWKWW",
	"GIGAVLKVL",
	"GFGCNKKCHRHC",
	"KRWWKWWRRR",
	"GWLKKIKKWLKKIK",
	"RRRPRPPYLPRPRP",
	"ILPWKWPWWPWRRR",
	"GIGKHKNKKGKH",
	"GFGCNKKCFR",
	"KRWRWRW",
	"GWLKKIK",
	"RRRPRPP",
	"ILPWKW",
	"GFGCNGPWDEDIQC",
	"KRWWK",
	"GFGCNKKCH",
	"KRWWKWWRRRWWK",
	"GWLKKIKKWLKKIKKW",
	"RRRPRPPYLPRPRPPP",
	"ILPWKWPWWPWRRRP",
	"GIGKHKNKKGKHNGW",
	"GFGCNKKCFRKCRR",
	"KRWRWRWRWRR",
	"GWLKKIKKWLKKIKK",
	"RRRPRPPYLPRP",
	"ILPWKWPWWP",
	"GIGAVLKV",
	"GFGCNKKCHRHCRRF",
	"KRWWKWWRRWW",
}

// loadSample validates the built-in lists and tags them with the source name
// (default "Sample").
func loadSample(spec SourceSpec, v *peptide.Validator) []peptide.LabeledPeptide {
	name := spec.Name
	if name == "" {
		name = "Sample"
	}

	var out []peptide.LabeledPeptide
	add := func(seqs []string, label peptide.Label) {
		for _, raw := range seqs {
			v.Stats.TotalLoaded++
			seq, reason := v.Validate(raw)
			if reason != peptide.OK {
				continue
			}
			out = append(out, peptide.LabeledPeptide{
				Sequence: seq,
				Label:    label,
				Source:   name,
			})
		}
	}
	add(sampleToxic, peptide.Toxic)
	add(sampleNonToxic, peptide.NonToxic)
	return out
}
