package reflectdesc

import (
	"testing"

	"github.com/schemakit/schemakit/descriptor"
)

type color string

func (color) EnumValues() []string {
	return []string{"Red", "Green"}
}

type address struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

type person struct {
	Name    string  `json:"name"`
	Age     *int    `json:"age"`
	secret  string
	Skipped string  `json:"-"`
	Home    address `json:"home"`
}

func TestCanonicalNameForBuiltins(t *testing.T) {
	if name := For[string]().CanonicalName(); name != "string" {
		t.Errorf("Expected 'string', got '%s'", name)
	}
	if name := For[int64]().CanonicalName(); name != "int64" {
		t.Errorf("Expected 'int64', got '%s'", name)
	}
}

func TestCanonicalNameForNamedType(t *testing.T) {
	expected := "github.com/schemakit/schemakit/descriptor/reflectdesc.person"
	if name := For[person]().CanonicalName(); name != expected {
		t.Errorf("Expected '%s', got '%s'", expected, name)
	}
	if simple := For[person]().SimpleName(); simple != "person" {
		t.Errorf("Expected 'person', got '%s'", simple)
	}
}

func TestPointerIsOptional(t *testing.T) {
	d := For[*int]()
	if !descriptor.HasBase(d, descriptor.OptionalName) {
		t.Fatal("Expected pointer type to carry the optional marker")
	}
	args := d.TypeArgs()
	if len(args) != 1 || args[0].CanonicalName() != "int" {
		t.Errorf("Expected one 'int' type argument, got %v", args)
	}
	expected := "schemakit.Optional[int]"
	if name := d.CanonicalName(); name != expected {
		t.Errorf("Expected '%s', got '%s'", expected, name)
	}
}

func TestOptionalWrapperIsOptional(t *testing.T) {
	d := For[descriptor.Optional[string]]()
	if !descriptor.HasBase(d, descriptor.OptionalName) {
		t.Fatal("Expected Optional[T] to carry the optional marker")
	}
	args := d.TypeArgs()
	if len(args) != 1 || args[0].CanonicalName() != "string" {
		t.Errorf("Expected one 'string' type argument, got %v", args)
	}
	if d.SimpleName() != "Optional" {
		t.Errorf("Expected simple name 'Optional', got '%s'", d.SimpleName())
	}
	if d.IsRecord() {
		t.Error("Expected Optional[T] not to classify as a record")
	}
}

func TestSliceIsSequence(t *testing.T) {
	d := For[[]string]()
	if !descriptor.HasBase(d, descriptor.SequenceMarker) {
		t.Fatal("Expected slice type to carry the sequence marker")
	}
	args := d.TypeArgs()
	if len(args) != 1 || args[0].CanonicalName() != "string" {
		t.Errorf("Expected one 'string' type argument, got %v", args)
	}
}

func TestEnumerationDetection(t *testing.T) {
	d := For[color]()
	if !descriptor.HasBase(d, descriptor.EnumerationMarker) {
		t.Fatal("Expected enumeration marker")
	}
	values := d.EnumValues()
	if len(values) != 2 || values[0] != "Red" || values[1] != "Green" {
		t.Errorf("Expected [Red Green], got %v", values)
	}
	if d.IsRecord() {
		t.Error("Expected enumeration not to classify as a record")
	}
}

func TestRecordMembers(t *testing.T) {
	members := For[person]().Members()
	if len(members) != 3 {
		t.Fatalf("Expected 3 members, got %d", len(members))
	}
	if members[0].Name != "name" {
		t.Errorf("Expected member name 'name', got '%s'", members[0].Name)
	}
	if members[1].Name != "age" {
		t.Errorf("Expected member name 'age', got '%s'", members[1].Name)
	}
	if !descriptor.HasBase(members[1].Type, descriptor.OptionalName) {
		t.Error("Expected 'age' member type to be optional")
	}
	if members[2].Name != "home" {
		t.Errorf("Expected member name 'home', got '%s'", members[2].Name)
	}
	if !members[2].Type.IsRecord() {
		t.Error("Expected 'home' member type to be a record")
	}
}

func TestMemberNameFallsBackToFieldName(t *testing.T) {
	type plain struct {
		Value string
	}
	members := For[plain]().Members()
	if len(members) != 1 || members[0].Name != "Value" {
		t.Fatalf("Expected member 'Value', got %v", members)
	}
}

type tagged struct {
	A string `schema:"description=first operand,title=Operand A"`
	B string `schema:"order=2"`
	C string `schema:"format=string:uuid"`
	D string `schema:"hide"`
	E string `schema:"multiselect,unique=false"`
	F string `schema:"order=notanumber"`
	G string `schema:"create=false"`
}

func taggedMember(t *testing.T, name string) descriptor.Member {
	t.Helper()
	for _, member := range For[tagged]().Members() {
		if member.Name == name {
			return member
		}
	}
	t.Fatalf("Member %s not found", name)
	return descriptor.Member{}
}

func TestTagDescriptionAndTitle(t *testing.T) {
	member := taggedMember(t, "A")
	description, ok := descriptor.FindIn[descriptor.Description](member.Annotations)
	if !ok || description.Text != "first operand" {
		t.Errorf("Expected description 'first operand', got '%s'", description.Text)
	}
	title, ok := descriptor.FindIn[descriptor.Title](member.Annotations)
	if !ok || title.Text != "Operand A" {
		t.Errorf("Expected title 'Operand A', got '%s'", title.Text)
	}
}

func TestTagOrder(t *testing.T) {
	member := taggedMember(t, "B")
	order, ok := descriptor.FindIn[descriptor.Order](member.Annotations)
	if !ok || order.Rank != 2 {
		t.Errorf("Expected order rank 2, got %+v", order)
	}
}

func TestTagFormat(t *testing.T) {
	member := taggedMember(t, "C")
	formatAs, ok := descriptor.FindIn[descriptor.FormatAs](member.Annotations)
	if !ok {
		t.Fatal("Expected a FormatAs annotation")
	}
	if formatAs.Type != "string" || formatAs.Format != "uuid" {
		t.Errorf("Expected string:uuid, got %+v", formatAs)
	}
}

func TestTagHide(t *testing.T) {
	member := taggedMember(t, "D")
	if !descriptor.Has[descriptor.Hide](member.Annotations) {
		t.Error("Expected a Hide annotation")
	}
}

func TestTagMultiSelectParameters(t *testing.T) {
	member := taggedMember(t, "E")
	ms, ok := descriptor.FindIn[descriptor.MultiSelect](member.Annotations)
	if !ok {
		t.Fatal("Expected a MultiSelect annotation")
	}
	if ms.UniqueItems || !ms.CreateIfNoneMatches {
		t.Errorf("Expected unique=false create=true, got %+v", ms)
	}
}

func TestTagMultiSelectImpliedByParameter(t *testing.T) {
	member := taggedMember(t, "G")
	ms, ok := descriptor.FindIn[descriptor.MultiSelect](member.Annotations)
	if !ok {
		t.Fatal("Expected a MultiSelect annotation implied by create=")
	}
	if !ms.UniqueItems || ms.CreateIfNoneMatches {
		t.Errorf("Expected unique=true create=false, got %+v", ms)
	}
}

func TestMalformedTagDegradesToNoOverride(t *testing.T) {
	member := taggedMember(t, "F")
	if descriptor.Has[descriptor.Order](member.Annotations) {
		t.Error("Expected malformed order tag to yield no Order annotation")
	}
}

type registryTarget struct {
	ID string `json:"id"`
}

type registryHost struct {
	Ref string `json:"ref"`
}

func TestRegistryFieldExposeAs(t *testing.T) {
	AnnotateField[registryHost]("Ref", ExposeAs[registryTarget]())
	members := For[registryHost]().Members()
	exposeAs, ok := descriptor.FindIn[descriptor.ExposeAs](members[0].Annotations)
	if !ok {
		t.Fatal("Expected a registered ExposeAs annotation")
	}
	if exposeAs.Target.SimpleName() != "registryTarget" {
		t.Errorf("Expected target 'registryTarget', got '%s'", exposeAs.Target.SimpleName())
	}
}

type annotatedRecord struct {
	Value string `json:"value"`
}

func (annotatedRecord) SchemaAnnotations() []descriptor.Annotation {
	return []descriptor.Annotation{descriptor.Description{Text: "from interface"}}
}

func TestTypeAnnotationsFromInterface(t *testing.T) {
	annotations := For[annotatedRecord]().Annotations()
	description, ok := descriptor.FindIn[descriptor.Description](annotations)
	if !ok || description.Text != "from interface" {
		t.Errorf("Expected description 'from interface', got '%s'", description.Text)
	}
}

type registered struct {
	Value string `json:"value"`
}

func TestRegistryTypeAnnotations(t *testing.T) {
	Annotate[registered](descriptor.Title{Text: "Registered"})
	annotations := For[registered]().Annotations()
	title, ok := descriptor.FindIn[descriptor.Title](annotations)
	if !ok || title.Text != "Registered" {
		t.Errorf("Expected title 'Registered', got '%s'", title.Text)
	}
}

type lateRegistered struct {
	Value string `json:"value"`
}

func TestLateRegistrationKeepsEarlierSets(t *testing.T) {
	Annotate[lateRegistered](descriptor.Title{Text: "First"})
	first := For[lateRegistered]().Annotations()

	Annotate[lateRegistered](descriptor.Description{Text: "added later"})

	if len(first) != 1 {
		t.Fatalf("Expected the earlier set to keep 1 annotation, got %d", len(first))
	}
	title, ok := descriptor.FindIn[descriptor.Title](first)
	if !ok || title.Text != "First" {
		t.Errorf("Expected title 'First', got '%s'", title.Text)
	}
	second := For[lateRegistered]().Annotations()
	if len(second) != 2 {
		t.Errorf("Expected the later set to hold 2 annotations, got %d", len(second))
	}
}
