package build

var (
	Name    = "blog-check"
	Version = "4.4"
)

func NameAndVersion() string {
	return Name + " v" + Version
}
