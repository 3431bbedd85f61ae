package analyzer

import "testing"

func TestPHPFunctionsAndClasses(t *testing.T) {
	src := "<?php\n" +
		"class UserRepo extends BaseRepo\n" +
		"{\n" +
		"    public function find(int $id, string $mode = \"strict\"): ?User\n" +
		"    {\n" +
		"        return null;\n" +
		"    }\n" +
		"}\n" +
		"\n" +
		"function helper(&$ref, ...$rest)\n" +
		"{\n" +
		"}\n"

	c := NewPHPCapability()
	classes := c.ExtractClasses(src)
	if len(classes) != 1 {
		t.Fatalf("got %d classes, want 1", len(classes))
	}
	cls := classes[0]
	if cls.Name != "UserRepo" || len(cls.BaseClasses) != 1 || cls.BaseClasses[0] != "BaseRepo" {
		t.Errorf("class = %+v", cls)
	}
	if len(cls.Methods) != 1 {
		t.Fatalf("got %d methods, want 1: %+v", len(cls.Methods), cls.Methods)
	}
	find := cls.Methods[0]
	if find.Name != "find" || find.ReturnType != "?User" || find.Line != 4 {
		t.Errorf("find = %+v", find)
	}
	if p := find.Parameters; len(p) != 2 || p[0].Name != "$id" || p[0].TypeHint != "int" || p[1].Default != "\"strict\"" {
		t.Errorf("find params = %+v", p)
	}

	fns := c.ExtractFunctions(src)
	var names []string
	for _, fn := range fns {
		names = append(names, fn.Name)
	}
	if len(fns) != 2 || fns[1].Name != "helper" {
		t.Fatalf("functions = %v, want [find helper]", names)
	}
	if p := fns[1].Parameters; len(p) != 2 || p[0].Name != "&$ref" || p[1].Name != "...$rest" {
		t.Errorf("helper params = %+v", p)
	}
}

func TestPHPIncludesAndUses(t *testing.T) {
	src := "<?php\n" +
		"require_once 'lib/db.php';\n" +
		"include \"views/header.php\";\n" +
		"require '/etc/app/bootstrap.php';\n" +
		"use App\\Models\\User;\n"

	deps := NewPHPCapability().ExtractImports("index.php", src)
	if len(deps) != 4 {
		t.Fatalf("got %d imports, want 4: %+v", len(deps), deps)
	}
	if deps[0].ImportedModule != "lib/db.php" || deps[0].ImportType != "require" || !deps[0].IsRelative {
		t.Errorf("import 0 = %+v (require_once maps to require)", deps[0])
	}
	if deps[1].ImportType != "include" || !deps[1].IsRelative {
		t.Errorf("import 1 = %+v", deps[1])
	}
	if deps[2].IsRelative {
		t.Errorf("absolute require marked relative: %+v", deps[2])
	}
	if deps[3].ImportedModule != "App\\Models\\User" || deps[3].ImportType != "use" || deps[3].IsRelative {
		t.Errorf("use = %+v", deps[3])
	}
}
