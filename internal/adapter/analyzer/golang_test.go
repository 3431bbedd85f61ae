package analyzer

import "testing"

func TestGoFunctionsAndStructs(t *testing.T) {
	src := "package demo\n" +
		"\n" +
		"type Server struct {\n" +
		"\taddr string\n" +
		"}\n" +
		"\n" +
		"func Sum(a int, b int) int {\n" +
		"\treturn a + b\n" +
		"}\n" +
		"\n" +
		"func (s *Server) Start(addr string) error {\n" +
		"\treturn nil\n" +
		"}\n"

	c := NewGoCapability()
	fns := c.ExtractFunctions(src)
	if len(fns) != 2 {
		t.Fatalf("got %d functions, want 2", len(fns))
	}
	if fns[0].Name != "Sum" || fns[0].ReturnType != "int" || fns[0].Line != 7 {
		t.Errorf("Sum = %+v", fns[0])
	}
	if p := fns[0].Parameters; len(p) != 2 || p[1].Name != "b" || p[1].TypeHint != "int" {
		t.Errorf("Sum params = %+v", p)
	}

	classes := c.ExtractClasses(src)
	if len(classes) != 1 {
		t.Fatalf("got %d structs, want 1", len(classes))
	}
	srv := classes[0]
	if srv.Name != "Server" || srv.Line != 3 {
		t.Errorf("struct = %+v", srv)
	}
	if len(srv.Methods) != 1 || srv.Methods[0].Name != "Start" {
		t.Errorf("methods = %+v", srv.Methods)
	}
}

func TestGoImports(t *testing.T) {
	src := "package demo\n" +
		"\n" +
		"import \"fmt\"\n" +
		"\n" +
		"import (\n" +
		"\t\"os\"\n" +
		"\tstr \"strings\"\n" +
		"\t\"./local\"\n" +
		")\n"

	deps := NewGoCapability().ExtractImports("demo.go", src)
	if len(deps) != 4 {
		t.Fatalf("got %d imports, want 4: %+v", len(deps), deps)
	}
	if deps[0].ImportedModule != "fmt" || deps[0].LineNumber != 3 || deps[0].IsRelative {
		t.Errorf("import 0 = %+v", deps[0])
	}
	if deps[2].ImportedModule != "strings" {
		t.Errorf("aliased import = %+v", deps[2])
	}
	if deps[3].ImportedModule != "./local" || !deps[3].IsRelative {
		t.Errorf("relative import = %+v", deps[3])
	}
}
