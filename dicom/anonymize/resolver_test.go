package anonymize

import (
	"testing"

	"github.com/medvault/dicomkit/dicom/vr"
	"github.com/stretchr/testify/assert"
)

func TestResolveCompoundTable(t *testing.T) {
	cases := []struct {
		name   string
		action ProfileAction
		class  ConformanceClass
		want   ResolvedOp
	}{
		{"Z-or-D class1", PAZOrD, Class1, OpReplaceDummy},
		{"Z-or-D class2", PAZOrD, Class2, OpReplaceEmpty},
		{"Z-or-D class3", PAZOrD, Class3, OpReplaceEmpty},
		{"X-or-Z class1", PAXOrZ, Class1, OpRemove},
		{"X-or-Z class2", PAXOrZ, Class2, OpReplaceEmpty},
		{"X-or-Z class3", PAXOrZ, Class3, OpRemove},
		{"X-or-D class1", PAXOrD, Class1, OpReplaceDummy},
		{"X-or-D class2", PAXOrD, Class2, OpRemove},
		{"X-or-D class3", PAXOrD, Class3, OpRemove},
		{"X-or-Z-or-D class1", PAXOrZOrD, Class1, OpReplaceDummy},
		{"X-or-Z-or-D class2", PAXOrZOrD, Class2, OpReplaceEmpty},
		{"X-or-Z-or-D class3", PAXOrZOrD, Class3, OpRemove},
		{"X-or-Z-or-UID class1", PAXOrZOrUID, Class1, OpRemapIdentifier},
		{"X-or-Z-or-UID class2", PAXOrZOrUID, Class2, OpReplaceEmpty},
		{"X-or-Z-or-UID class3", PAXOrZOrUID, Class3, OpRemove},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.action, tc.class, vr.UniqueIdentifier, true)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveSimpleActions(t *testing.T) {
	assert.Equal(t, OpKeep, Resolve(PAKeep, Class1, vr.LongString, true))
	assert.Equal(t, OpRemove, Resolve(PARemove, Class1, vr.LongString, true))
	assert.Equal(t, OpReplaceDummy, Resolve(PAReplaceDummy, Class1, vr.LongString, true))
	assert.Equal(t, OpClean, Resolve(PAClean, Class1, vr.LongText, true))
	assert.Equal(t, OpRemapIdentifier, Resolve(PARemapID, Class1, vr.UniqueIdentifier, true))
}

func TestResolveRemapNonUIDDowngradesToDummy(t *testing.T) {
	got := Resolve(PAXOrZOrUID, Class1, vr.LongString, true)
	assert.Equal(t, OpReplaceDummy, got, "remap-identifier against a non-UI VR must downgrade to replace-with-dummy")
}

func TestResolveReplaceEmptyOnAlreadyEmptyDowngradesToKeep(t *testing.T) {
	got := Resolve(PAZOrD, Class2, vr.PersonName, false)
	assert.Equal(t, OpKeep, got, "replace-with-empty against an already-empty value must downgrade to keep")
}

func TestResolveReplaceEmptyWithValueStaysReplaceEmpty(t *testing.T) {
	got := Resolve(PAZOrD, Class2, vr.PersonName, true)
	assert.Equal(t, OpReplaceEmpty, got)
}

func TestClassColumn(t *testing.T) {
	assert.Equal(t, 0, classColumn(Class1))
	assert.Equal(t, 0, classColumn(Class1C))
	assert.Equal(t, 1, classColumn(Class2))
	assert.Equal(t, 1, classColumn(Class2C))
	assert.Equal(t, 2, classColumn(Class3))
}
