package nestedtext_test

import (
	"fmt"

	"github.com/nestedtext-go/nestedtext"
)

func ExampleParse() {
	doc := `name: Holly
occupation: Software Engineer
reports to:
  - Manny Griffen
  - Woody Woodall
`
	v, err := nestedtext.Parse([]byte(doc))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	m := v.(*nestedtext.Mapping)
	name, _ := m.Get("name")
	fmt.Println(name)

	// Output:
	// Holly
}

func ExampleMarshalValue() {
	m := nestedtext.NewMapping()
	m.Set("name", nestedtext.String("Holly"))
	m.Set("occupation", nestedtext.String("Software Engineer"))

	out, err := nestedtext.MarshalValue(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(string(out))

	// Output:
	// name: Holly
	// occupation: Software Engineer
}

func ExampleUnmarshal() {
	type Config struct {
		Host string `nt:"host"`
		Port string `nt:"port"`
	}

	var cfg Config
	err := nestedtext.Unmarshal([]byte("host: localhost\nport: 8080\n"), &cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s:%s\n", cfg.Host, cfg.Port)

	// Output:
	// localhost:8080
}
