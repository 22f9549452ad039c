package docparser

import "testing"

func TestStatusString(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusEOS, "EOS"},
		{StatusOK, "OK"},
		{StatusNewPara, "NEWPARA"},
		{StatusListItemTok, "LISTITEM"},
		{StatusEndListTok, "ENDLIST"},
		{StatusListItem, "ListItem"},
		{StatusEndList, "EndList"},
		{StatusEndPre, "EndPre"},
		{StatusEndDesc, "EndDesc"},
		{StatusEndTable, "EndTable"},
		{StatusDescTitle, "DescTitle"},
		{StatusDescData, "DescData"},
		{StatusTableRow, "TableRow"},
		{StatusTableCell, "TableCell"},
		{StatusTableHCell, "TableHCell"},
		{StatusSection, "Section"},
		{StatusInternal, "Internal"},
		{StatusSimpleSec, "SimpleSec"},
		{StatusSwitchLang, "SwitchLang"},
		{Status(255), "Unknown"},
	}

	for _, c := range cases {
		if got := c.status.String(); got != c.want {
			t.Errorf("Status(%d).String() = %q, want %q", c.status, got, c.want)
		}
	}
}
