package analyzer

import "testing"

func TestRustFunctions(t *testing.T) {
	src := "pub async fn fetch(url: &str) -> Result<Response, Error> {\n" +
		"    todo!()\n" +
		"}\n"

	fns := NewRustCapability().ExtractFunctions(src)
	if len(fns) != 1 {
		t.Fatalf("got %d functions, want 1", len(fns))
	}
	fn := fns[0]
	if fn.Name != "fetch" || !fn.IsAsync {
		t.Errorf("fn = %+v", fn)
	}
	if fn.ReturnType != "Result<Response, Error>" {
		t.Errorf("return type = %q", fn.ReturnType)
	}
	if len(fn.Parameters) != 1 || fn.Parameters[0].Name != "url" || fn.Parameters[0].TypeHint != "&str" {
		t.Errorf("params = %+v", fn.Parameters)
	}
}

func TestRustStructsWithImplMethods(t *testing.T) {
	src := "pub struct Counter {\n" +
		"    count: u64,\n" +
		"}\n" +
		"\n" +
		"impl Counter {\n" +
		"    pub fn new() -> Counter {\n" +
		"        Counter { count: 0 }\n" +
		"    }\n" +
		"\n" +
		"    fn incr(&mut self, by: u64) {\n" +
		"        self.count += by;\n" +
		"    }\n" +
		"}\n"

	classes := NewRustCapability().ExtractClasses(src)
	if len(classes) != 1 {
		t.Fatalf("got %d types, want 1", len(classes))
	}
	counter := classes[0]
	if counter.Name != "Counter" || counter.Line != 1 {
		t.Errorf("type = %+v", counter)
	}
	if len(counter.Methods) != 2 {
		t.Fatalf("got %d methods, want 2: %+v", len(counter.Methods), counter.Methods)
	}
	if counter.Methods[0].Name != "new" || counter.Methods[0].Line != 6 {
		t.Errorf("method 0 = %+v", counter.Methods[0])
	}
	incr := counter.Methods[1]
	if incr.Name != "incr" || len(incr.Parameters) != 2 || incr.Parameters[0].Name != "self" {
		t.Errorf("method 1 = %+v", incr)
	}
}

func TestRustUseExpansion(t *testing.T) {
	src := "use std::collections::{HashMap, HashSet};\n" +
		"use super::config;\n" +
		"use crate::io as cio;\n"

	deps := NewRustCapability().ExtractImports("lib.rs", src)
	if len(deps) != 4 {
		t.Fatalf("got %d imports, want 4: %+v", len(deps), deps)
	}
	if deps[0].ImportedModule != "std::collections::HashMap" || deps[0].ImportType != "use" {
		t.Errorf("import 0 = %+v", deps[0])
	}
	if deps[1].ImportedModule != "std::collections::HashSet" {
		t.Errorf("import 1 = %+v", deps[1])
	}
	if deps[2].ImportedModule != "super::config" || !deps[2].IsRelative {
		t.Errorf("import 2 = %+v", deps[2])
	}
	if deps[3].ImportedModule != "crate::io" || deps[3].IsRelative {
		t.Errorf("import 3 = %+v", deps[3])
	}
}
