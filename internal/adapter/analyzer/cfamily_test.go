package analyzer

import "testing"

func TestCFunctionsAndIncludes(t *testing.T) {
	src := "#include \"util.h\"\n" +
		"#include <stdio.h>\n" +
		"\n" +
		"static int add(int a, int b) {\n" +
		"    return a + b;\n" +
		"}\n" +
		"void reset(void);\n"

	c := NewCFamilyCapability("c")
	fns := c.ExtractFunctions(src)
	if len(fns) != 2 {
		t.Fatalf("got %d functions, want 2: %+v", len(fns), fns)
	}

	add := fns[0]
	if add.Name != "add" || add.ReturnType != "static int" || add.Line != 4 {
		t.Errorf("add = %+v", add)
	}
	if len(add.Parameters) != 2 || add.Parameters[0].Name != "a" || add.Parameters[0].TypeHint != "int" {
		t.Errorf("add params = %+v", add.Parameters)
	}
	reset := fns[1]
	if reset.Name != "reset" || len(reset.Parameters) != 0 {
		t.Errorf("reset = %+v", reset)
	}

	deps := c.ExtractImports("main.c", src)
	if len(deps) != 2 {
		t.Fatalf("got %d includes, want 2", len(deps))
	}
	if deps[0].ImportedModule != "util.h" || !deps[0].IsRelative || deps[0].ImportType != "include" {
		t.Errorf("include 0 = %+v", deps[0])
	}
	if deps[1].ImportedModule != "stdio.h" || deps[1].IsRelative {
		t.Errorf("include 1 = %+v", deps[1])
	}
}

func TestCppClasses(t *testing.T) {
	src := "class Shape {\n" +
		"public:\n" +
		"    double area() const;\n" +
		"};\n" +
		"\n" +
		"class Circle : public Shape {\n" +
		"public:\n" +
		"    double area() const override;\n" +
		"};\n"

	classes := NewCFamilyCapability("cpp").ExtractClasses(src)
	if len(classes) != 2 {
		t.Fatalf("got %d classes, want 2", len(classes))
	}

	shape := classes[0]
	if shape.Name != "Shape" || len(shape.BaseClasses) != 0 {
		t.Errorf("shape = %+v", shape)
	}
	if len(shape.Methods) != 1 || shape.Methods[0].Name != "area" || shape.Methods[0].Line != 3 {
		t.Errorf("shape methods = %+v", shape.Methods)
	}

	circle := classes[1]
	if len(circle.BaseClasses) != 1 || circle.BaseClasses[0] != "Shape" {
		t.Errorf("circle bases = %v, want [Shape] with access specifier stripped", circle.BaseClasses)
	}
	if circle.Line != 6 {
		t.Errorf("circle line = %d, want 6", circle.Line)
	}
}
