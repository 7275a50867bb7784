package game

// BuiltinWords is the word list shipped with the game: common English words
// of three to seven letters, lowercase ASCII only. Hosts can replace or
// extend it with a user word-list file; the simulation only requires that
// every word fits the grid alphabet.
func BuiltinWords() []string {
	return []string{
		"cat", "dog", "sun", "sky", "sea", "ice", "oak", "owl", "fox", "bee",
		"ash", "dew", "fog", "ivy", "jay", "elm", "orb", "ore", "gem", "fin",
		"arc", "dusk", "dawn", "moon", "star", "rain", "snow", "wind", "leaf",
		"tree", "root", "fern", "moss", "lake", "pond", "reed", "wave", "tide",
		"sand", "dune", "cave", "peak", "glen", "vale", "path", "gate", "lamp",
		"glow", "fire", "coal", "mist", "hail", "frost", "storm", "cloud",
		"river", "brook", "creek", "shore", "coast", "cliff", "ridge", "stone",
		"slate", "amber", "pearl", "coral", "birch", "cedar", "maple", "alder",
		"aspen", "heron", "raven", "finch", "robin", "crane", "otter", "hare",
		"deer", "wolf", "bear", "lynx", "toad", "newt", "trout", "perch",
		"wren", "swan", "dove", "hawk", "kite", "lark", "crow", "moth",
		"snail", "ember", "flame", "spark", "shade", "light", "night", "bloom",
		"petal", "thorn", "briar", "grove", "field", "marsh", "heath", "fjord",
		"delta", "basin", "swale", "summit", "meadow", "forest", "willow",
		"spruce", "poplar", "laurel", "clover", "nettle", "sorrel", "thistle",
		"bramble", "juniper", "hemlock", "cypress", "sparrow", "kestrel",
		"badger", "beaver", "marten", "weasel", "salmon", "minnow", "herring",
		"osprey", "plover", "curlew", "magpie", "cicada", "beetle", "hornet",
		"spider", "lichen", "fungus", "acorn", "breeze", "squall",
		"zephyr", "aurora", "eclipse", "horizon", "ravine",
		"canyon", "plateau", "tundra", "glacier", "geyser", "lagoon", "island",
		"harbor", "beacon", "lantern", "candle", "copper", "silver", "cobalt",
		"quartz", "garnet", "jasper", "basalt", "gravel", "pebble", "boulder",
		"drift", "swirl", "ripple", "eddy", "surge", "spray", "foam", "brine",
		"reef", "kelp", "shell", "haze", "gloom", "gleam", "shine",
		"flash", "flare", "blaze",
	}
}
