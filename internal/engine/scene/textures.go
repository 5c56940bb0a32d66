package scene

// sceneTextures is the image manifest, loaded in order so each texture's
// unit matches its position here.
var sceneTextures = []struct {
	file string
	tag  string
}{
	{"pot.jpg", "pot"},
	{"wood.jpg", "wood"},
	{"woodie.jpg", "woodie"},
	{"coaster.jpg", "coaster"},
	{"toptable.jpg", "toptable"},
	{"bottomtable.jpg", "bottomtable"},
	{"napkin.jpg", "napkin"},
	{"wall.jpg", "wall"},
}
