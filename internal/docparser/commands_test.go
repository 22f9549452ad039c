package docparser

import "testing"

func TestLookupCommandKnownName(t *testing.T) {
	if got := lookupCommand("param"); got != CmdParam {
		t.Errorf("lookupCommand(param) = %d, want CmdParam", got)
	}
}

func TestLookupCommandUnknownName(t *testing.T) {
	if got := lookupCommand("notarealcommand"); got != CmdUnknown {
		t.Errorf("lookupCommand(notarealcommand) = %d, want CmdUnknown", got)
	}
}

func TestIsSimpleSectionCmd(t *testing.T) {
	kind, ok := isSimpleSectionCmd(CmdNote)
	if !ok || kind != SimpleNote {
		t.Errorf("isSimpleSectionCmd(CmdNote) = (%d, %v), want (SimpleNote, true)", kind, ok)
	}

	if _, ok := isSimpleSectionCmd(CmdParam); ok {
		t.Error("isSimpleSectionCmd(CmdParam) reported ok=true, \\param is not a simple section")
	}
}

func TestRegisterCommandAliasResolvesLikeCanonical(t *testing.T) {
	t.Cleanup(func() { delete(commandAliases, "todolist") })

	RegisterCommandAlias("todolist", "todo")

	if got := lookupCommand("todolist"); got != CmdTodo {
		t.Errorf("lookupCommand(todolist) = %d, want CmdTodo", got)
	}
}

func TestRegisterCommandAliasUnknownCanonicalIsNoOp(t *testing.T) {
	t.Cleanup(func() { delete(commandAliases, "ghost") })

	RegisterCommandAlias("ghost", "notarealcommand")

	if got := lookupCommand("ghost"); got != CmdUnknown {
		t.Errorf("lookupCommand(ghost) = %d, want CmdUnknown after aliasing an unknown canonical", got)
	}
}
