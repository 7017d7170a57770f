package wordstore

// Built-in dictionaries.
var defaultWords = map[string][]string{
	"adjective": {
		"brave", "calm", "eager", "fancy", "gentle", "happy", "jolly", "kind",
		"lively", "nice", "proud", "silly", "witty", "zealous", "mighty", "swift",
		"sharp", "bold", "daring", "bright", "creative", "dynamic", "vibrant", "radiant",
		"sincere", "honest", "steadfast", "ardent", "graceful", "gritty", "focused", "robust",
		"resolute", "vigorous", "agile", "ancient", "balanced", "brilliant", "charming", "clever",
		"cosmic", "crisp", "curious", "diligent", "elegant", "epic", "fearless", "fierce",
		"frosty", "gallant", "golden", "heroic", "humble", "legendary", "luminous", "majestic",
		"mystical", "noble", "playful", "polished", "quick", "quirky", "royal", "serene",
		"sleek", "smooth", "stellar", "sunny", "tenacious", "tidy", "tranquil", "trusty",
		"valiant", "vivid", "warm", "whimsical", "wise", "zesty",
	},
	"noun": {
		"squirrel", "tiger", "eagle", "dolphin", "panther", "lion", "panda", "koala",
		"whale", "shark", "wolf", "falcon", "otter", "rabbit", "bear", "fox",
		"owl", "leopard", "cheetah", "buffalo", "zebra", "giraffe", "coyote", "raccoon",
		"badger", "moose", "gazelle", "cougar", "jaguar", "bison", "viper", "cobra",
		"lizard", "beaver", "alpaca", "camel", "canary", "caribou", "condor", "crane",
		"cricket", "crow", "dingo", "duck", "elephant", "ferret", "finch", "gecko",
		"goose", "hawk", "heron", "iguana", "impala", "jackal", "kestrel", "kiwi",
		"lemur", "llama", "lynx", "macaw", "magpie", "marlin", "narwhal", "octopus",
		"ocelot", "orca", "osprey", "parrot", "pelican", "penguin", "puma", "quail",
		"raven", "robin", "salmon", "seal", "sparrow", "swan", "tapir", "toucan",
		"trout", "walrus", "wombat", "yak",
	},
	"color": {
		"red", "blue", "green", "yellow", "orange", "purple", "black", "white",
		"gray", "brown", "crimson", "azure", "emerald", "silver", "violet", "magenta",
		"cyan", "amber", "indigo", "coral", "jade", "ruby", "sapphire", "pearl",
		"ebony", "ivory", "bronze", "copper", "rose", "teal", "olive", "maroon",
	},
	"verb": {
		"jumping", "running", "flying", "dancing", "singing", "gliding", "racing", "rolling",
		"soaring", "diving", "climbing", "drifting", "roaming", "spinning", "leaping", "wandering",
		"building", "crafting", "dreaming", "exploring", "hunting", "juggling", "painting", "sailing",
	},
}
