package repositories

import "servermart/internal/models"

const placeholderImage = "/api/placeholder/600/400"

// DefaultProducts returns the stock storefront catalog.
func DefaultProducts() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "VIP Rank",
			CategoryID:  "ranks",
			Description: "Access exclusive features and stand out with special chat colors.",
			LongDescription: "The VIP Rank grants you access to a variety of exclusive features that set you apart " +
				"from regular players. Enjoy custom chat colors that make your messages stand out, access to " +
				"VIP-only servers with special events, exclusive emotes to express yourself, and a distinguished " +
				"VIP badge next to your name. Upgrade your gaming experience today and join the VIP community!",
			Price: 9.99,
			Icon:  models.IconCrown,
			Features: models.StringList{
				"Custom chat color",
				"Access to VIP server",
				"5 exclusive emotes",
				"VIP badge next to name",
			},
			Popular: false,
			Images: []models.ProductImage{
				{ID: 1, Src: placeholderImage, Alt: "VIP rank badge showcase"},
				{ID: 2, Src: placeholderImage, Alt: "VIP exclusive chat colors"},
				{ID: 3, Src: placeholderImage, Alt: "VIP server access"},
			},
			Benefits: models.StringList{
				"Stand out in chat with custom colors",
				"Connect with other VIPs in exclusive servers",
				"Express yourself with unique emotes",
				"Show off your status with a VIP badge",
				"Get priority support from our team",
			},
		},
		{
			ID:          2,
			Name:        "MVP Rank",
			CategoryID:  "ranks",
			Description: "Premium perks with enhanced visibility and unique game abilities.",
			LongDescription: "The MVP Rank takes your gaming experience to the next level with an impressive array " +
				"of premium perks. Make a grand entrance with custom join messages, skip the waiting lines with " +
				"priority server queue, receive exclusive monthly bonus items, and showcase your status with " +
				"MVP-exclusive cosmetics. The MVP Rank includes all VIP benefits plus much more, giving you the " +
				"recognition and advantages you deserve.",
			Price: 19.99,
			Icon:  models.IconTrophy,
			Features: models.StringList{
				"All VIP features",
				"Custom join message",
				"Priority server queue",
				"Monthly bonus items",
				"MVP exclusive cosmetics",
			},
			Popular: true,
			Images: []models.ProductImage{
				{ID: 1, Src: placeholderImage, Alt: "MVP rank showcase"},
				{ID: 2, Src: placeholderImage, Alt: "MVP exclusive cosmetics"},
				{ID: 3, Src: placeholderImage, Alt: "Monthly bonus items showcase"},
			},
			Benefits: models.StringList{
				"Skip the waiting lines with priority queue",
				"Make an entrance with custom join messages",
				"Receive monthly exclusive items",
				"Access all VIP perks",
				"Enjoy advanced cosmetic options",
				"Get recognized with MVP tag in chat",
			},
		},
		{
			ID:          3,
			Name:        "Legend Rank",
			CategoryID:  "ranks",
			Description: "Dominate with advanced permissions and rare customization options.",
			LongDescription: "The Legend Rank represents the elite tier of our community. With this prestigious " +
				"rank, you'll have access to animated name tags that catch everyone's attention, custom player " +
				"auras that make you stand out in any crowd, early access to testing features before they're " +
				"public, exclusive Legend-only game modes for unique gameplay experiences, and dedicated " +
				"concierge support from our staff. The Legend Rank includes all MVP features and takes them to " +
				"new heights.",
			Price: 39.99,
			Icon:  models.IconShield,
			Features: models.StringList{
				"All MVP features",
				"Animated name tags",
				"Custom player aura",
				"Access to testing features",
				"Legend-only game modes",
				"Personal concierge support",
			},
			Popular: false,
			Images: []models.ProductImage{
				{ID: 1, Src: placeholderImage, Alt: "Legend rank animated badge"},
				{ID: 2, Src: placeholderImage, Alt: "Custom player auras"},
				{ID: 3, Src: placeholderImage, Alt: "Legend exclusive game modes"},
			},
			Benefits: models.StringList{
				"Captivate others with animated name tags",
				"Create a unique visual identity with custom auras",
				"Experience new features before anyone else",
				"Enjoy exclusive game modes only for Legends",
				"Get dedicated support with priority assistance",
				"Access all MVP and VIP benefits",
			},
		},
		{
			ID:          4,
			Name:        "TITAN Rank",
			CategoryID:  "ranks",
			Description: "Ultimate status with exclusive powers and developer access.",
			LongDescription: "The TITAN Rank represents the absolute pinnacle of our ranking system. As a TITAN, " +
				"you'll have unprecedented access to developer chats where you can interact directly with our " +
				"team, create custom commands that enhance your gameplay experience, participate in exclusive " +
				"monthly private events, influence the future of the game with your feedback, get priority for " +
				"feature requests, and receive the ultimate cosmetic bundle that makes your character truly " +
				"unique. The TITAN Rank is for those who demand nothing but the best.",
			Price: 99.99,
			Icon:  models.IconZap,
			Features: models.StringList{
				"All Legend features",
				"Developer chat access",
				"Custom command creation",
				"Monthly private events",
				"Exclusive game influence",
				"Priority feature requests",
				"Ultimate cosmetic bundle",
			},
			Popular: false,
			Images: []models.ProductImage{
				{ID: 1, Src: placeholderImage, Alt: "TITAN rank showcase"},
				{ID: 2, Src: placeholderImage, Alt: "Ultimate cosmetic bundle"},
				{ID: 3, Src: placeholderImage, Alt: "Developer chat access"},
				{ID: 4, Src: placeholderImage, Alt: "Custom command interface"},
			},
			Benefits: models.StringList{
				"Shape the future of the game with direct developer access",
				"Create your own commands for unique gameplay",
				"Attend exclusive events with developers and other TITANs",
				"Enjoy the most comprehensive cosmetic collection",
				"Have your feature suggestions prioritized",
				"Access all benefits from Legend, MVP, and VIP ranks",
			},
		},
		{
			ID:          5,
			Name:        "VIP Crate Key",
			CategoryID:  "crates",
			Description: "Unlock exclusive VIP gear with boosted drop rates.",
			LongDescription: "The VIP Crate Key unlocks a treasure trove of valuable items designed for players " +
				"who want to enhance their gameplay experience. Each crate contains a selection of rare weapon " +
				"skins that add style to your arsenal, basic armor sets for improved protection, common emotes " +
				"to express yourself in-game, and a 10% chance to receive rare drops that are typically " +
				"difficult to obtain. The VIP Crate is the perfect starting point for collectors and players " +
				"looking to stand out.",
			Price: 2.99,
			Icon:  models.IconKey,
			Features: models.StringList{
				"Rare weapon skins",
				"Basic armor sets",
				"Common emotes",
				"10% chance for rare drops",
			},
			Popular: false,
			Images: []models.ProductImage{
				{ID: 1, Src: placeholderImage, Alt: "VIP crate opening animation"},
				{ID: 2, Src: placeholderImage, Alt: "VIP rare weapon skins"},
				{ID: 3, Src: placeholderImage, Alt: "Basic armor sets"},
			},
			Benefits: models.StringList{
				"Customize your weapons with rare skins",
				"Increase your defense with basic armor sets",
				"Express yourself with new emotes",
				"Chance to obtain rare items normally difficult to find",
				"Affordable entry into our crate system",
			},
		},
		{
			ID:          6,
			Name:        "MVP Crate Key",
			CategoryID:  "crates",
			Description: "Superior items with enhanced stats and unique designs.",
			LongDescription: "The MVP Crate Key offers access to superior quality items that provide both " +
				"aesthetic appeal and gameplay advantages. Each crate contains the powerful Energy Pistol, a " +
				"collection of rare weapon attachments to customize your arsenal, uncommon armor sets with " +
				"enhanced protection, exclusive MVP emotes that are unavailable elsewhere, and a 15% chance to " +
				"receive epic drops that can change your gameplay experience. The MVP Crate is perfect for " +
				"serious players looking for both style and substance.",
			Price: 4.99,
			Icon:  models.IconKey,
			Features: models.StringList{
				"Energy Pistol",
				"Rare weapon attachments",
				"Uncommon armor sets",
				"Exclusive MVP emotes",
				"15% chance for epic drops",
			},
			Popular: true,
			Images: []models.ProductImage{
				{ID: 1, Src: placeholderImage, Alt: "MVP crate key"},
				{ID: 2, Src: placeholderImage, Alt: "Energy Pistol"},
				{ID: 3, Src: placeholderImage, Alt: "Rare weapon attachments"},
				{ID: 4, Src: placeholderImage, Alt: "Uncommon armor sets"},
			},
			Benefits: models.StringList{
				"Equip the powerful Energy Pistol for an advantage in combat",
				"Customize your weapons with rare attachments",
				"Improve your defense with uncommon armor",
				"Stand out with exclusive emotes",
				"Higher chance for epic items",
			},
		},
		{
			ID:          7,
			Name:        "Legend Crate Key",
			CategoryID:  "crates",
			Description: "Premium loot with guaranteed rare items and special effects.",
			LongDescription: "The Legend Crate Key opens the door to premium loot designed for serious players. " +
				"Each crate contains the powerful Energy Assault Rifle, Kevlar II armor pieces for superior " +
				"protection, animated weapon skins that stand out on the battlefield, exclusive Legend-only " +
				"pets that follow you in game, and a 25% chance for legendary drops that can transform your " +
				"gameplay experience. The Legend Crate represents high-value rewards for discerning players.",
			Price: 7.99,
			Icon:  models.IconKey,
			Features: models.StringList{
				"Energy Assault Rifle",
				"Kevlar II armor pieces",
				"Animated weapon skins",
				"Legend-exclusive pets",
				"25% chance for legendary drops",
			},
			Popular: false,
			Images: []models.ProductImage{
				{ID: 1, Src: placeholderImage, Alt: "Legend crate key"},
				{ID: 2, Src: placeholderImage, Alt: "Energy Assault Rifle"},
				{ID: 3, Src: placeholderImage, Alt: "Kevlar II armor"},
				{ID: 4, Src: placeholderImage, Alt: "Animated weapon skins"},
			},
			Benefits: models.StringList{
				"Dominate with the powerful Energy Assault Rifle",
				"Enhanced protection with Kevlar II armor",
				"Stand out with animated weapon skins",
				"Showcase your status with exclusive pets",
				"High chance for legendary items",
				"Access to rare gameplay modifications",
			},
		},
		{
			ID:          8,
			Name:        "TITAN Crate Key",
			CategoryID:  "crates",
			Description: "The ultimate crate with the rarest and most powerful items in the game.",
			LongDescription: "The TITAN Crate Key unlocks the most prestigious and valuable collection of items " +
				"available in the game. Each crate contains the devastating Plasma Rifle, the versatile Energy " +
				"Assault Rifle, the complete Kevlar III armor set for maximum protection, exclusive particle " +
				"effects that showcase your status, legendary weapon skins of the highest quality, and a " +
				"guaranteed legendary item that will transform your gameplay. The TITAN Crate represents the " +
				"pinnacle of our offering and is designed for players who accept nothing but the absolute best.",
			Price: 14.99,
			Icon:  models.IconKey,
			Features: models.StringList{
				"Plasma Rifle",
				"Energy Assault Rifle",
				"Kevlar III armor set",
				"Exclusive particle effects",
				"Legendary weapon skins",
				"Guaranteed legendary item",
			},
			Popular: false,
			Images: []models.ProductImage{
				{ID: 1, Src: placeholderImage, Alt: "TITAN crate key"},
				{ID: 2, Src: placeholderImage, Alt: "Plasma Rifle"},
				{ID: 3, Src: placeholderImage, Alt: "Energy Assault Rifle"},
				{ID: 4, Src: placeholderImage, Alt: "Kevlar III armor set"},
				{ID: 5, Src: placeholderImage, Alt: "Particle effects showcase"},
			},
			Benefits: models.StringList{
				"Dominate with the powerful Plasma Rifle",
				"Versatile combat options with the Energy Assault Rifle",
				"Maximum protection with the complete Kevlar III armor",
				"Stand out with exclusive particle effects",
				"Showcase your status with legendary weapon skins",
				"Guaranteed to receive at least one legendary item",
			},
		},
		{
			ID:          9,
			Name:        "Minor Offense Unban",
			CategoryID:  "punishments",
			Description: "Appeal a minor offense and get back to playing.",
			LongDescription: "The Minor Offense Unban service provides a way for players to appeal temporary bans " +
				"resulting from minor rule violations. This service removes temporary restrictions, lifts chat " +
				"limitations, and cleans your record for minor offenses. The appeal is processed instantly, " +
				"allowing you to get back to playing without delay. This service is designed for first-time or " +
				"accidental violations where the impact on other players was minimal.",
			Price: 4.99,
			Icon:  models.IconBan,
			Features: models.StringList{
				"Removes temporary bans",
				"Chat restriction removal",
				"Clean record for minor offenses",
				"Instant processing",
			},
			Popular: false,
			Images: []models.ProductImage{
				{ID: 1, Src: placeholderImage, Alt: "Minor offense unban process"},
				{ID: 2, Src: placeholderImage, Alt: "Chat restrictions removal"},
			},
			Benefits: models.StringList{
				"Get back to playing immediately",
				"Clean slate for minor infractions",
				"Removal of chat restrictions",
				"Instant automatic processing",
				"No waiting period for appeals",
			},
		},
		{
			ID:          10,
			Name:        "Major Offense Appeal",
			CategoryID:  "punishments",
			Description: "Appeal a major offense with mandatory review.",
			LongDescription: "The Major Offense Appeal service allows players to request a review of more serious " +
				"rule violations. Each appeal undergoes a thorough manual review by our admin team who " +
				"carefully considers the circumstances of the violation. If approved, your account will be " +
				"reinstated with a one-time warning status. Appeals are processed within 24 hours, and our team " +
				"may reach out for additional information. This service is designed for players who acknowledge " +
				"their mistake and are committed to following the rules moving forward.",
			Price: 14.99,
			Icon:  models.IconBan,
			Features: models.StringList{
				"Appeal for serious violations",
				"Manual admin review",
				"One-time warning status",
				"Processing within 24 hours",
			},
			Popular: false,
			Images: []models.ProductImage{
				{ID: 1, Src: placeholderImage, Alt: "Major offense appeal process"},
				{ID: 2, Src: placeholderImage, Alt: "Admin review dashboard"},
				{ID: 3, Src: placeholderImage, Alt: "Warning status badge"},
			},
			Benefits: models.StringList{
				"Second chance for significant violations",
				"Fair review by experienced administrators",
				"Opportunity to explain circumstances",
				"Priority processing compared to free appeals",
				"Clear path to restore account standing",
			},
		},
		{
			ID:          11,
			Name:        "500 Tokens",
			CategoryID:  "tokens",
			Description: "Small token pack for marketplace purchases.",
			LongDescription: "The 500 Tokens pack provides you with in-game currency to spend in our marketplace. " +
				"These tokens can be used to purchase a variety of cosmetic items, temporary boosters, and " +
				"other convenience items. Tokens are delivered instantly to your account upon purchase, " +
				"allowing you to immediately browse and shop in our marketplace. This small token pack is " +
				"perfect for players who want to make a few select purchases without committing to a larger " +
				"amount.",
			Price: 4.99,
			Icon:  models.IconCoins,
			Features: models.StringList{
				"500 in-game tokens",
				"Instant delivery",
				"Use in marketplace for cosmetics",
			},
			Popular: false,
			Images: []models.ProductImage{
				{ID: 1, Src: placeholderImage, Alt: "500 tokens visualization"},
				{ID: 2, Src: placeholderImage, Alt: "Marketplace shopping with tokens"},
			},
			Benefits: models.StringList{
				"Quick access to in-game marketplace",
				"Purchase cosmetic items",
				"Instant delivery to your account",
				"Affordable entry option",
				"Use for limited-time offers",
			},
		},
		{
			ID:          12,
			Name:        "1,200 Tokens",
			CategoryID:  "tokens",
			Description: "Medium token pack with 10% bonus.",
			LongDescription: "The 1,200 Tokens pack offers excellent value with 1,100 base tokens plus a 10% " +
				"bonus of 100 additional tokens. These tokens can be used in our marketplace to purchase rare " +
				"items, exclusive cosmetics, and temporary gameplay enhancers. Tokens are delivered instantly " +
				"upon purchase, allowing you to immediately start shopping. This medium-sized token pack is " +
				"ideal for regular players who want access to more valuable items in the marketplace.",
			Price: 9.99,
			Icon:  models.IconCoins,
			Features: models.StringList{
				"1,100 base tokens",
				"100 bonus tokens (10%)",
				"Instant delivery",
				"Use in marketplace for rare items",
			},
			Popular: true,
			Images: []models.ProductImage{
				{ID: 1, Src: placeholderImage, Alt: "1,200 tokens pack"},
				{ID: 2, Src: placeholderImage, Alt: "Bonus tokens visualization"},
				{ID: 3, Src: placeholderImage, Alt: "Rare marketplace items"},
			},
			Benefits: models.StringList{
				"Get 10% more tokens as a bonus",
				"Access to rare marketplace items",
				"More purchasing power for premium cosmetics",
				"Instant delivery to your account",
				"Best value for regular players",
			},
		},
		{
			ID:          13,
			Name:        "2,600 Tokens",
			CategoryID:  "tokens",
			Description: "Large token pack with 15% bonus.",
			LongDescription: "The 2,600 Tokens pack provides substantial value with 2,260 base tokens plus a 15% " +
				"bonus of 340 additional tokens. This amount of tokens gives you significant purchasing power " +
				"in our marketplace, allowing you to acquire epic items, limited edition cosmetics, and other " +
				"high-value offerings. Tokens are delivered instantly to your account upon purchase. This large " +
				"token pack is perfect for dedicated players who want access to premium marketplace content.",
			Price: 19.99,
			Icon:  models.IconCoins,
			Features: models.StringList{
				"2,260 base tokens",
				"340 bonus tokens (15%)",
				"Instant delivery",
				"Use in marketplace for epic items",
			},
			Popular: false,
			Images: []models.ProductImage{
				{ID: 1, Src: placeholderImage, Alt: "2,600 tokens pack"},
				{ID: 2, Src: placeholderImage, Alt: "15% bonus visualization"},
				{ID: 3, Src: placeholderImage, Alt: "Epic marketplace items"},
			},
			Benefits: models.StringList{
				"Enjoy a generous 15% token bonus",
				"Access to epic and rare marketplace items",
				"Substantial buying power for premium content",
				"Instant delivery to your account",
				"Great value for dedicated players",
			},
		},
		{
			ID:          14,
			Name:        "5,500 Tokens",
			CategoryID:  "tokens",
			Description: "Premium token pack with 20% bonus.",
			LongDescription: "The 5,500 Tokens pack represents our best value with 4,580 base tokens plus a " +
				"massive 20% bonus of 920 additional tokens. This premium amount gives you exceptional " +
				"purchasing power in our marketplace, allowing you to acquire legendary items, the rarest " +
				"cosmetics, and other exclusive offerings. Tokens are delivered instantly to your account. This " +
				"premium token pack is designed for our most dedicated players who want unrestricted access to " +
				"the very best items available.",
			Price: 39.99,
			Icon:  models.IconCoins,
			Features: models.StringList{
				"4,580 base tokens",
				"920 bonus tokens (20%)",
				"Instant delivery",
				"Use in marketplace for legendary items",
			},
			Popular: false,
			Images: []models.ProductImage{
				{ID: 1, Src: placeholderImage, Alt: "5,500 tokens pack"},
				{ID: 2, Src: placeholderImage, Alt: "20% bonus visualization"},
				{ID: 3, Src: placeholderImage, Alt: "Legendary marketplace items"},
			},
			Benefits: models.StringList{
				"Receive our largest bonus of 20% extra tokens",
				"Access to legendary and exclusive items",
				"Maximum purchasing power in the marketplace",
				"Instant delivery to your account",
				"Best value option for serious players",
				"Ability to purchase multiple premium items",
			},
		},
		{
			ID:          15,
			Name:        "Game Bank Account",
			CategoryID:  "bank",
			Description: "Manage your finances remotely with our premium banking system.",
			LongDescription: "The Game Bank Account is a premium service that allows you to manage your in-game " +
				"finances with unprecedented convenience and security. With a monthly subscription of $5.00, " +
				"you gain access to remote currency management, the ability to set up scheduled payments to " +
				"other players, earn interest on your balance, view detailed transaction history, and make " +
				"seamless money transfers between players. This service is perfect for serious players who " +
				"engage in trading, maintain multiple investments, or simply want more control over their " +
				"in-game economy.",
			Price: 5.00,
			Icon:  models.IconCreditCard,
			Features: models.StringList{
				"Remote currency management",
				"Scheduled payments",
				"Interest on balance",
				"Transaction history",
				"Money transfers between players",
			},
			Popular:    false,
			ComingSoon: true,
			Images: []models.ProductImage{
				{ID: 1, Src: placeholderImage, Alt: "Game bank interface"},
				{ID: 2, Src: placeholderImage, Alt: "Remote banking app"},
				{ID: 3, Src: placeholderImage, Alt: "Transaction history view"},
				{ID: 4, Src: placeholderImage, Alt: "Interest earnings visualization"},
			},
			Benefits: models.StringList{
				"Manage your finances from anywhere",
				"Earn passive income through interest",
				"Schedule recurring payments",
				"Track all your transactions in one place",
				"Transfer money safely to other players",
				"Receive financial reports and insights",
			},
		},
	}
}

// DefaultCategories returns the storefront categories in display order.
// Product lists are filled in by the repository implementations.
func DefaultCategories() []models.Category {
	return []models.Category{
		{ID: "ranks", Name: "Ranks", Icon: models.IconCrown},
		{ID: "crates", Name: "Crates", Icon: models.IconPackage},
		{ID: "punishments", Name: "Punishments", Icon: models.IconBan},
		{ID: "tokens", Name: "Token Packs", Icon: models.IconCoins},
		{ID: "bank", Name: "Bank", Icon: models.IconCreditCard},
	}
}

// NewSeededCatalogRepository builds the in-memory catalog with the stock
// product data.
func NewSeededCatalogRepository() *MemoryCatalogRepository {
	return NewMemoryCatalogRepository(DefaultProducts(), DefaultCategories())
}
