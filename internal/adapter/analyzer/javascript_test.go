package analyzer

import "testing"

func TestJavaScriptFunctions(t *testing.T) {
	src := "async function getUser(id) {\n" +
		"  return db.find(id);\n" +
		"}\n" +
		"const sum = (a, b = 1) => a + b;\n" +
		"export const handler = async event => process(event);\n"

	fns := NewJavaScriptCapability("javascript").ExtractFunctions(src)
	if len(fns) != 3 {
		t.Fatalf("got %d functions, want 3: %+v", len(fns), fns)
	}

	if fns[0].Name != "getUser" || !fns[0].IsAsync || fns[0].Line != 1 {
		t.Errorf("getUser = %+v", fns[0])
	}
	if fns[1].Name != "sum" || len(fns[1].Parameters) != 2 {
		t.Fatalf("sum = %+v", fns[1])
	}
	if p := fns[1].Parameters[1]; p.Name != "b" || p.Default != "1" {
		t.Errorf("sum param 1 = %+v", p)
	}
	if fns[2].Name != "handler" || !fns[2].IsAsync {
		t.Errorf("handler = %+v", fns[2])
	}
	if p := fns[2].Parameters; len(p) != 1 || p[0].Name != "event" {
		t.Errorf("handler params = %+v", p)
	}
}

func TestJavaScriptClasses(t *testing.T) {
	src := "class Dog extends Animal {\n" +
		"  constructor(name) {\n" +
		"    super(name);\n" +
		"  }\n" +
		"  async bark(times = 1) {\n" +
		"  }\n" +
		"}\n"

	classes := NewJavaScriptCapability("javascript").ExtractClasses(src)
	if len(classes) != 1 {
		t.Fatalf("got %d classes, want 1", len(classes))
	}
	cls := classes[0]
	if cls.Name != "Dog" || len(cls.BaseClasses) != 1 || cls.BaseClasses[0] != "Animal" {
		t.Errorf("class = %+v", cls)
	}
	if len(cls.Methods) != 2 {
		t.Fatalf("got %d methods, want 2: %+v", len(cls.Methods), cls.Methods)
	}
	if cls.Methods[0].Name != "constructor" || cls.Methods[0].Line != 2 {
		t.Errorf("method 0 = %+v", cls.Methods[0])
	}
	if m := cls.Methods[1]; m.Name != "bark" || !m.IsAsync || m.Parameters[0].Default != "1" {
		t.Errorf("method 1 = %+v", m)
	}
}

func TestTypeScriptParametersButNoReturnType(t *testing.T) {
	src := "function greet(name: string, times: number = 2): string {\n  return name;\n}\n"

	fns := NewJavaScriptCapability("typescript").ExtractFunctions(src)
	if len(fns) != 1 {
		t.Fatalf("got %d functions, want 1", len(fns))
	}
	fn := fns[0]
	if fn.ReturnType != "" {
		t.Errorf("return type = %q, want empty", fn.ReturnType)
	}
	if len(fn.Parameters) != 2 {
		t.Fatalf("got %d params, want 2", len(fn.Parameters))
	}
	if p := fn.Parameters[0]; p.Name != "name" || p.TypeHint != "string" {
		t.Errorf("param 0 = %+v", p)
	}
	if p := fn.Parameters[1]; p.Name != "times" || p.TypeHint != "number" || p.Default != "2" {
		t.Errorf("param 1 = %+v", p)
	}
}

func TestJavaScriptImports(t *testing.T) {
	src := "import fs from \"fs\";\n" +
		"import { helper } from './lib/util';\n" +
		"import './setup';\n" +
		"const cfg = require('../config');\n"

	deps := NewJavaScriptCapability("javascript").ExtractImports("src/app.js", src)
	if len(deps) != 4 {
		t.Fatalf("got %d imports, want 4: %+v", len(deps), deps)
	}

	if deps[0].ImportedModule != "fs" || deps[0].IsRelative || deps[0].ImportType != "import" {
		t.Errorf("import 0 = %+v", deps[0])
	}
	if deps[1].ImportedModule != "./lib/util" || !deps[1].IsRelative {
		t.Errorf("import 1 = %+v", deps[1])
	}
	if deps[2].ImportedModule != "./setup" || !deps[2].IsRelative {
		t.Errorf("import 2 = %+v", deps[2])
	}
	if deps[3].ImportedModule != "../config" || deps[3].ImportType != "require" || !deps[3].IsRelative {
		t.Errorf("import 3 = %+v", deps[3])
	}
}
