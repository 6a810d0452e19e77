package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<podjetje>
	<izdelki>
		<izdelek>
			<izdelekID>1001</izdelekID>
			<izdelekIme>Polnilec USB-C 65W</izdelekIme>
			<opis><![CDATA[<p>Hitri <b>polnilec</b></p>]]></opis>
			<PPC>29,90</PPC>
			<dobava id="1">Na zalogi</dobava>
			<blagovnaZnamka>Anker</blagovnaZnamka>
			<slikaVelika>https://img.example.com/1001.jpg</slikaVelika>
			<dodatnaSlika2>https://img.example.com/1001-2.jpg</dodatnaSlika2>
			<dodatnaSlika>https://img.example.com/1001-0.jpg</dodatnaSlika>
		</izdelek>
		<izdelek>
			<izdelekID>1002</izdelekID>
			<izdelekIme>Kabel &amp; adapter&nbsp;1m</izdelekIme>
			<dobava>po naročilu</dobava>
			<kategorija><ime>Kabli</ime></kategorija>
		</izdelek>
	</izdelki>
</podjetje>`

func TestXMLParser_Parse(t *testing.T) {
	t.Run("items and fields", func(t *testing.T) {
		items, err := NewXMLParser("").Parse([]byte(sampleFeed))
		require.NoError(t, err)
		require.Len(t, items, 2)

		first := items[0]
		assert.Equal(t, "1001", first.Value("izdelekID"))
		assert.Equal(t, "<p>Hitri <b>polnilec</b></p>", first.Value("opis"))
		stock, ok := first.Get("dobava")
		require.True(t, ok)
		assert.Equal(t, "1", stock.Attr("id"))
		assert.Equal(t, "Na zalogi", stock.Text)
		assert.Len(t, first.Fields, 9)

		second := items[1]
		assert.Equal(t, "Kabel & adapter\u00a01m", second.Value("izdelekIme"))
		kat, ok := second.Get("kategorija")
		require.True(t, ok)
		assert.Empty(t, kat.Attrs)
		assert.Empty(t, kat.Text)
	})

	t.Run("field map", func(t *testing.T) {
		items, err := NewXMLParser(DefaultItemsPath).Parse([]byte(sampleFeed))
		require.NoError(t, err)

		item := DefaultFieldMap().Item(items[0])
		assert.Equal(t, "1001", item.ExternalID)
		assert.Equal(t, "Polnilec USB-C 65W", item.Name)
		assert.Equal(t, "29,90", item.PriceRaw)
		assert.Equal(t, "Anker", item.Brand)
		require.NotNil(t, item.Stock)
		assert.Equal(t, "1", item.Stock.PresenceID)

		noStock := DefaultFieldMap().Item(items[1])
		require.NotNil(t, noStock.Stock)
		assert.Empty(t, noStock.Stock.PresenceID)
		assert.Empty(t, noStock.Brand)
	})

	t.Run("windows-1250 encoding", func(t *testing.T) {
		doc := `<?xml version="1.0" encoding="windows-1250"?><r><izdelki><izdelek><izdelekIme>Čevlji šport</izdelekIme></izdelek></izdelki></r>`
		encoded, err := charmap.Windows1250.NewEncoder().String(doc)
		require.NoError(t, err)

		items, err := NewXMLParser("").Parse([]byte(encoded))
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Čevlji šport", items[0].Value("izdelekIme"))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := NewXMLParser("").Parse([]byte("<r><izdelki><izdelek></izdelki>"))
		require.Error(t, err)
	})

	t.Run("not xml", func(t *testing.T) {
		_, err := NewXMLParser("").Parse([]byte("not xml content"))
		require.ErrorIs(t, err, ErrEmptyDocument)
	})

	t.Run("missing item list", func(t *testing.T) {
		_, err := NewXMLParser("").Parse([]byte("<r><products><product/></products></r>"))
		require.ErrorIs(t, err, ErrNoItemList)
	})

	t.Run("empty item list", func(t *testing.T) {
		_, err := NewXMLParser("").Parse([]byte("<r><izdelki></izdelki></r>"))
		require.ErrorIs(t, err, ErrNoItems)
	})

	t.Run("custom path", func(t *testing.T) {
		items, err := NewXMLParser("/catalog/items/item/").Parse([]byte(
			"<root><catalog><items><item><id>a</id></item><item><id>b</id></item></items></catalog></root>"))
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "b", items[1].Value("id"))
	})

	t.Run("items directly under root", func(t *testing.T) {
		items, err := NewXMLParser("item").Parse([]byte("<root><item><id>a</id></item></root>"))
		require.NoError(t, err)
		require.Len(t, items, 1)
	})
}
