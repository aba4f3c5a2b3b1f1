package profanity

// badWords is the word list carried over from the original deployment.
// Entries match as substrings, so conjugations and diminutives that embed
// a listed word are caught without being listed themselves.
var badWords = []string{
	"mierda", "carajo", "puta", "puto", "pendejo", "imbecil", "estupido", "idiota",
	"hdp", "concha", "chingar", "perra", "culero", "cagada", "boludo", "qlo", "mrd", "vrg", "vrga",
	"pito", "polla", "pedo", "coño", "cabron", "cabrón", "joder", "cojudo", "cojudazo", "cojudita",
	"pendejada", "chingada", "chingadera", "chingón", "huevón", "webón", "weón", "guevón", "cagón",
	"cagona", "cabrona", "zorra", "malparido", "malparida", "güevón", "güevona", "pajuo", "pajudo",
	"gilipollas", "hostia", "carajazo", "cojonudo", "pelotudo", "forro", "baboso",
	"babosa", "tarado", "tarada", "tonto", "tonta", "bobo", "boba", "payaso", "payasa", "payasada",
	"mamón", "mamona", "mamadera", "mamapito", "chupapija", "chupamedias", "chupapolla",
	"chupapito", "chupacabra", "chupasangre", "chupaverga", "cagoncito",
	"mierdita", "mierdero", "mierdoso", "asqueroso", "asquerosa", "apestoso", "apestosa",
	"cerote", "verga", "vergazo", "vergón", "verguita", "chingoncito", "chingoncita",
	"hijueputa", "hijodeputa", "hijaputa", "hijadelagranputa", "hp", "hpta", "hpt", "joputa",
	"caraculo", "carepito", "careverga", "careburro", "caremondá", "carechimba",
	"maldito", "maldita", "malnacido", "malnacida", "maldito sea", "que te jodan",
	"que te follen", "follar", "follón", "follador", "mamabicho", "comemierda", "tragamierda",
	"metemierda", "huevada", "huevadas", "huevona", "huevear", "jodido",
	"jodida", "jodete", "chingate", "chingatumadre", "chingatumadrecabron",
	"chingatumadreputo", "cagaste", "cagar", "cojones", "cojonuda",
	"pichichi", "pichula", "pichón", "pichona", "pichanga", "pito chico",
	"pito grande", "vergüenza ajena", "estúpida", "atontado", "atontada", "bestia", "animal",
	"maldito perro", "maldita sea", "perro", "lagarto", "basura", "basurita",
	"asno", "menso", "mensazo", "torpe", "tarupido", "pelmazo", "pelmaza", "patán", "patana",
	"chaparra", "vago", "vaga", "desgraciado", "desgraciada", "infeliz", "descebrado",
	"cuero", "cochinada", "cochino", "cochina", "porquería", "porquerías", "porquerizo",
	"porqueriza", "idiotez", "idioteces", "tontería", "tonterías", "babosada", "babosadas",
	"¡bah!", "retardado", "retardada", "gil", "gila", "gilazo", "gilaza", "sonso", "sonsa",
	"sonsoide", "mocoso", "mocosa", "malhablado", "malhablada", "grosero", "grosera",
	"desubicado", "desubicada", "manoseado", "manoseada", "arrastrado",
	"arrastrada", "patético", "patética", "corriente", "vulgar", "bruto", "bruta", "bestiecilla",
	"burrada", "burro", "burra", "zángano", "zángana", "majadero", "majadera",
	"malagradecido", "malagradecida", "arrogante", "patudo", "patuda", "cachetón", "cachetona",
	"desquiciado", "desquiciada", "lunático", "lunática", "odioso", "odiosa", "sarnoso",
	"sarnosa", "víbora", "culebra", "lagartón", "lagartona", "puñeta", "huevónazo",
	"pajarraco", "cabronazo", "cabronaza",
}
