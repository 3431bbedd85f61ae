package analyzer

import "testing"

func TestCSharpMethodsAndClasses(t *testing.T) {
	src := "public class OrderService : IOrderService\n" +
		"{\n" +
		"    public async Task<int> CountAsync(string filter)\n" +
		"    {\n" +
		"        return 0;\n" +
		"    }\n" +
		"\n" +
		"    private void Reset(ref int total, int seed = 1)\n" +
		"    {\n" +
		"    }\n" +
		"}\n"

	c := NewCSharpCapability()
	classes := c.ExtractClasses(src)
	if len(classes) != 1 {
		t.Fatalf("got %d classes, want 1", len(classes))
	}
	cls := classes[0]
	if cls.Name != "OrderService" || len(cls.BaseClasses) != 1 || cls.BaseClasses[0] != "IOrderService" {
		t.Errorf("class = %+v", cls)
	}
	if len(cls.Methods) != 2 {
		t.Fatalf("got %d methods, want 2: %+v", len(cls.Methods), cls.Methods)
	}

	count := cls.Methods[0]
	if count.Name != "CountAsync" || count.ReturnType != "Task<int>" || !count.IsAsync || count.Line != 3 {
		t.Errorf("CountAsync = %+v", count)
	}
	reset := cls.Methods[1]
	if reset.IsAsync || reset.ReturnType != "void" {
		t.Errorf("Reset = %+v", reset)
	}
	if p := reset.Parameters; len(p) != 2 || p[0].Name != "total" || p[0].TypeHint != "int" || p[1].Default != "1" {
		t.Errorf("Reset params = %+v", p)
	}
}

func TestCSharpUsings(t *testing.T) {
	src := "using System;\n" +
		"using System.Collections.Generic;\n" +
		"using Json = System.Text.Json;\n" +
		"using (var file = File.Open(path))\n"

	deps := NewCSharpCapability().ExtractImports("Program.cs", src)
	if len(deps) != 3 {
		t.Fatalf("got %d usings, want 3 (resource-scope using excluded): %+v", len(deps), deps)
	}
	if deps[0].ImportedModule != "System" || deps[0].ImportType != "using" || deps[0].IsRelative {
		t.Errorf("using 0 = %+v", deps[0])
	}
	if deps[2].ImportedModule != "System.Text.Json" {
		t.Errorf("aliased using = %+v", deps[2])
	}
}
