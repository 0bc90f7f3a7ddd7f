package citizen

import "github.com/disgoorg/disgo/discord"

var Commands = []discord.ApplicationCommandCreate{
	Register,
	Profile,
	CheckIn,
}
