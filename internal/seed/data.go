package seed

const sampleImageURL = "https://images.pexels.com/photos/3075988/pexels-photo-3075988.jpeg?auto=compress&cs=tinysrgb&dpr=3&h=750&w=1260"

// sampleAuthor is keyed by a fixed reference that pictures point at. Stored
// ids are generated by the repository and mapped from the key at load time.
type sampleAuthor struct {
	Key      string
	Name     string
	LastName string
}

type samplePicture struct {
	Title     string
	Genre     string
	AuthorKey string
}

var sampleAuthors = []sampleAuthor{
	{Key: "875228391", Name: "Alex", LastName: "Malo"},
	{Key: "40243259", Name: "Oscar", LastName: "Malo"},
	{Key: "326408350", Name: "Luis", LastName: "Malo"},
	{Key: "348582348", Name: "Herzen", LastName: "Malo"},
	{Key: "476706009", Name: "Juanmi", LastName: "Malo"},
}

var samplePictures = []samplePicture{
	{Title: "None But the Brave", Genre: "nature", AuthorKey: "875228391"},
	{Title: "Radioactive Dreams", Genre: "nature", AuthorKey: "40243259"},
	{Title: "Baron Blood (Orrori del castello di Norimberga, Gli)", Genre: "nature", AuthorKey: "326408350"},
	{Title: "Saving Silverman (Evil Woman)", Genre: "nature", AuthorKey: "348582348"},
	{Title: "Meet the Fockers", Genre: "nature", AuthorKey: "476706009"},
	{Title: "Eternal Sunshine of the Spotless Mind", Genre: "nature", AuthorKey: "875228391"},
	{Title: "Frida", Genre: "nature", AuthorKey: "326408350"},
	{Title: "4th Man, The (Fourth Man, The) (Vierde man, De)", Genre: "nature", AuthorKey: "476706009"},
	{Title: "Private Function, A", Genre: "nature", AuthorKey: "476706009"},
}
