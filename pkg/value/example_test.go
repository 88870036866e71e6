package value_test

import (
	"fmt"

	"github.com/matzehuels/prettydoc/pkg/render"
	"github.com/matzehuels/prettydoc/pkg/value"
)

type Server struct {
	Host  string
	Ports []int
	Token string `pprint:"-"`
}

func ExampleFrom() {
	s := Server{Host: "localhost", Ports: []int{80, 443, 8080}, Token: "secret"}

	out, _ := render.Render(value.From(s), render.Config{MaxWidth: 24, IndentWidth: 2})
	fmt.Println(out)
	// Output:
	// Server{
	//   Host: "localhost",
	//   Ports: [80, 443, 8080]
	// }
}

func ExampleFromJSON() {
	d, err := value.FromJSON([]byte(`{"name": "prettydoc", "ratio": 0.30000000000000004, "tags": ["doc", "layout"]}`))
	if err != nil {
		panic(err)
	}
	out, _ := render.Render(d, render.DefaultConfig())
	fmt.Println(out)
	// Output:
	// {
	//     "name": "prettydoc",
	//     "ratio": 0.30000000000000004,
	//     "tags": ["doc", "layout"]
	// }
}
