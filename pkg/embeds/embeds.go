package embeds

import (
	"io"

	"fractals-bot/pkg/fractals"

	"github.com/disgoorg/disgo/discord"
)

const (
	ColorBlue = 0x001BFF
	ColorRed  = 0xFF0000

	FractalsTitle = "Tomorrow's Daily Fractals:"
	ErrorTitle    = "Error"
)

// Hello is the demo reply: one embed with three fields and a footer, and
// imageName attached and shown as the embed image.
func Hello(imageName string, image io.Reader) discord.MessageCreate {
	embed := discord.NewEmbedBuilder().
		SetTitle("This is a title").
		SetDescription("This is a description").
		SetImage("attachment://" + imageName).
		AddField("This is the first field", "This is a field body", true).
		AddField("This is the second field", "Both of these fields are inline", true).
		AddField("This is the third field", "This is not an inline field", false).
		SetFooterText("This is a footer").
		Build()
	return discord.NewMessageCreateBuilder().
		SetContent("Hello, World!").
		SetEmbeds(embed).
		AddFile(imageName, "", image).
		Build()
}

func Fractals(summary *fractals.Summary) discord.Embed {
	embedBuilder := discord.NewEmbedBuilder()
	embedBuilder.SetTitle(FractalsTitle)
	embedBuilder.SetColor(ColorBlue)
	for _, field := range summary.Fields() {
		embedBuilder.AddField(field.Name, field.Value, false)
	}
	return embedBuilder.Build()
}

func Error(err error) discord.Embed {
	return discord.NewEmbedBuilder().
		SetTitle(ErrorTitle).
		SetDescription(err.Error()).
		SetColor(ColorRed).
		Build()
}
