// Package fallback holds the static verse and image tables used when the
// generative services are unavailable. The data keeps the app functional
// offline: themed suggestions stay on-topic via substring matching before
// degrading to a randomized generic pool.
package fallback

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/palavradiaria/palavra-api/internal/domain"
)

// suggestionCount is the list size returned for themed requests.
const suggestionCount = 5

// suggestionsByTheme maps normalized theme keys to curated suggestion lists.
// Keys are matched as substrings of the normalized user theme, so "muita fé"
// still resolves to the "fé" list.
var suggestionsByTheme = map[string][]domain.VerseSuggestion{
	"fé": {
		{VerseText: "Ora, a fé é a certeza daquilo que esperamos e a prova das coisas que não vemos.", VerseReference: "Hebreus 11:1"},
		{VerseText: "Porque vivemos por fé, e não pelo que vemos.", VerseReference: "2 Coríntios 5:7"},
		{VerseText: "Sem fé é impossível agradar a Deus, pois quem dele se aproxima precisa crer que ele existe e que recompensa aqueles que o buscam.", VerseReference: "Hebreus 11:6"},
		{VerseText: "Jesus olhou para eles e respondeu: \"Para o homem é impossível, mas para Deus todas as coisas são possíveis\".", VerseReference: "Mateus 19:26"},
		{VerseText: "Consequentemente, a fé vem por se ouvir a mensagem, e a mensagem é ouvida mediante a palavra de Cristo.", VerseReference: "Romanos 10:17"},
	},
	"esperança": {
		{VerseText: "Mas os que esperam no Senhor renovarão as forças, subirão com asas como águias; correrão, e não se cansarão; caminharão, e não se fatigarão.", VerseReference: "Isaías 40:31"},
		{VerseText: "Porque sou eu que conheço os planos que tenho para vocês', diz o Senhor, 'planos de fazê-los prosperar e não de causar dano, planos de dar a vocês esperança e um futuro.", VerseReference: "Jeremias 29:11"},
		{VerseText: "Que o Deus da esperança os encha de toda alegria e paz, por sua confiança nele, para que vocês transbordem de esperança, pelo poder do Espírito Santo.", VerseReference: "Romanos 15:13"},
		{VerseText: "Alegrem-se na esperança, sejam pacientes na tribulação, perseverem na oração.", VerseReference: "Romanos 12:12"},
		{VerseText: "Bendito o homem que confia no Senhor, e cuja confiança é o Senhor.", VerseReference: "Jeremias 17:7"},
	},
	"amor": {
		{VerseText: "O amor é paciente, o amor é bondoso. Não inveja, não se vangloria, não se orgulha.", VerseReference: "1 Coríntios 13:4"},
		{VerseText: "Acima de tudo, porém, revistam-se do amor, que é o elo perfeito.", VerseReference: "Colossenses 3:14"},
		{VerseText: "Nós amamos porque ele nos amou primeiro.", VerseReference: "1 João 4:19"},
		{VerseText: "Ainda que eu tenha o dom de profecia e saiba todos os mistérios e todo o conhecimento, e tenha uma fé capaz de mover montanhas, se não tiver amor, nada serei.", VerseReference: "1 Coríntios 13:2"},
		{VerseText: "Quem não ama não conhece a Deus, porque Deus é amor.", VerseReference: "1 João 4:8"},
	},
	"gratidão": {
		{VerseText: "Deem graças em todas as circunstâncias, pois esta é a vontade de Deus para vocês em Cristo Jesus.", VerseReference: "1 Tessalonicenses 5:18"},
		{VerseText: "Este é o dia em que o Senhor agiu; alegremo-nos e exultemos neste dia.", VerseReference: "Salmos 118:24"},
		{VerseText: "Tudo o que fizerem, seja em palavra ou em ação, façam-no em nome do Senhor Jesus, dando por meio dele graças a Deus Pai.", VerseReference: "Colossenses 3:17"},
		{VerseText: "Rendam graças ao Senhor, pois ele é bom; o seu amor dura para sempre.", VerseReference: "Salmos 107:1"},
		{VerseText: "Bendiga o Senhor a minha alma! Não esqueça de nenhuma de suas bênçãos!", VerseReference: "Salmos 103:2"},
	},
	"paz": {
		{VerseText: "Deixo-lhes a paz; a minha paz lhes dou. Não a dou como o mundo a dá. Não se perturbem os seus corações, nem tenham medo.", VerseReference: "João 14:27"},
		{VerseText: "E a paz de Deus, que excede todo o entendimento, guardará os seus corações e as suas mentes em Cristo Jesus.", VerseReference: "Filipenses 4:7"},
		{VerseText: "Bem-aventurados os pacificadores, pois serão chamados filhos de Deus.", VerseReference: "Mateus 5:9"},
		{VerseText: "O Senhor dá força ao seu povo; o Senhor dá a seu povo a bênção da paz.", VerseReference: "Salmos 29:11"},
		{VerseText: "Em paz me deito e logo adormeço, pois só tu, Senhor, me fazes viver em segurança.", VerseReference: "Salmos 4:8"},
	},
	"força": {
		{VerseText: "Tudo posso naquele que me fortalece.", VerseReference: "Filipenses 4:13"},
		{VerseText: "O Senhor é a minha luz e a minha salvação; de quem terei temor? O Senhor é o meu forte refúgio; de quem terei medo?", VerseReference: "Salmos 27:1"},
		{VerseText: "Sejam fortes e corajosos. Não tenham medo nem fiquem apavorados por causa deles, pois o Senhor, o seu Deus, vai com vocês; nunca os deixará, nunca os abandonará.", VerseReference: "Deuteronômio 31:6"},
		{VerseText: "Deus é o nosso refúgio e a nossa fortaleza, auxílio sempre presente na adversidade.", VerseReference: "Salmos 46:1"},
		{VerseText: "Mas os que esperam no Senhor renovarão as forças.", VerseReference: "Isaías 40:31"},
	},
	"ansiedade": {
		{VerseText: "Lançando sobre ele toda a vossa ansiedade, porque ele tem cuidado de vós.", VerseReference: "1 Pedro 5:7"},
		{VerseText: "Não andeis ansiosos por coisa alguma; antes em tudo sejam os vossos pedidos conhecidos diante de Deus pela oração e súplica com ações de graças.", VerseReference: "Filipenses 4:6"},
		{VerseText: "Busquei ao Senhor, e ele me respondeu; livrou-me de todos os meus temores.", VerseReference: "Salmos 34:4"},
		{VerseText: "A ansiedade no coração do homem o abate, mas uma boa palavra o alegra.", VerseReference: "Provérbios 12:25"},
		{VerseText: "Quando os cuidados do meu coração se multiplicam, as tuas consolações recreiam a minha alma.", VerseReference: "Salmos 94:19"},
	},
	"família": {
		{VerseText: "Crê no Senhor Jesus e serás salvo, tu e a tua casa.", VerseReference: "Atos 16:31"},
		{VerseText: "Mas, se alguém não tem cuidado dos seus, e principalmente dos da sua família, negou a fé, e é pior do que o infiel.", VerseReference: "1 Timóteo 5:8"},
		{VerseText: "Eu e a minha casa serviremos ao Senhor.", VerseReference: "Josué 24:15"},
		{VerseText: "Honra a teu pai e a tua mãe, para que se prolonguem os teus dias na terra que o Senhor teu Deus te dá.", VerseReference: "Êxodo 20:12"},
		{VerseText: "Eis que os filhos são herança do Senhor, e o fruto do ventre o seu galardão.", VerseReference: "Salmos 127:3"},
	},
	"perdão": {
		{VerseText: "Antes sede uns para com os outros benignos, misericordiosos, perdoando-vos uns aos outros, como também Deus vos perdoou em Cristo.", VerseReference: "Efésios 4:32"},
		{VerseText: "Se confessarmos os nossos pecados, ele é fiel e justo para nos perdoar os pecados, e nos purificar de toda a injustiça.", VerseReference: "1 João 1:9"},
		{VerseText: "Suportando-vos uns aos outros, e perdoando-vos uns aos outros, se alguém tiver queixa contra outro; assim como Cristo vos perdoou, assim fazei vós também.", VerseReference: "Colossenses 3:13"},
		{VerseText: "Porque, se perdoardes aos homens as suas ofensas, também vosso Pai celestial vos perdoará a vós.", VerseReference: "Mateus 6:14"},
		{VerseText: "Tu, Senhor, és bom, e pronto a perdoar, e abundante em benignidade para todos os que te invocam.", VerseReference: "Salmos 86:5"},
	},
	"sabedoria": {
		{VerseText: "Se algum de vós tem falta de sabedoria, peça-a a Deus, que a todos dá liberalmente, e o não lança em rosto, e ser-lhe-á dada.", VerseReference: "Tiago 1:5"},
		{VerseText: "O temor do Senhor é o princípio da sabedoria, e o conhecimento do Santo a prudência.", VerseReference: "Provérbios 9:10"},
		{VerseText: "Porque o Senhor dá a sabedoria; da sua boca é que vem o conhecimento e o entendimento.", VerseReference: "Provérbios 2:6"},
		{VerseText: "A sabedoria, porém, lá do alto é, primeiramente pura, depois pacífica, moderada, tratável, cheia de misericórdia e de bons frutos, sem parcialidade, e sem hipocrisia.", VerseReference: "Tiago 3:17"},
		{VerseText: "Ensina-nos a contar os nossos dias, de tal maneira que alcancemos corações sábios.", VerseReference: "Salmos 90:12"},
	},
	"tristeza": {
		{VerseText: "O Senhor está perto dos que têm o coração quebrantado e salva os de espírito abatido.", VerseReference: "Salmos 34:18"},
		{VerseText: "Bem-aventurados os que choram, pois serão consolados.", VerseReference: "Mateus 5:4"},
		{VerseText: "O choro pode durar uma noite, mas a alegria vem pela manhã.", VerseReference: "Salmos 30:5"},
		{VerseText: "Ele cura os que têm o coração partido e trata das suas feridas.", VerseReference: "Salmos 147:3"},
		{VerseText: "Vinde a mim, todos os que estais cansados e oprimidos, e eu vos aliviarei.", VerseReference: "Mateus 11:28"},
	},
	"proteção": {
		{VerseText: "Aquele que habita no esconderijo do Altíssimo, à sombra do Onipotente descansará.", VerseReference: "Salmos 91:1"},
		{VerseText: "Mil cairão ao teu lado, e dez mil à tua direita, mas não chegará a ti.", VerseReference: "Salmos 91:7"},
		{VerseText: "O Senhor te guardará de todo o mal; guardará a tua alma.", VerseReference: "Salmos 121:7"},
		{VerseText: "Nenhuma arma forjada contra ti prosperará.", VerseReference: "Isaías 54:17"},
		{VerseText: "O anjo do Senhor acampa-se ao redor dos que o temem, e os livra.", VerseReference: "Salmos 34:7"},
	},
	"cura": {
		{VerseText: "Verdadeiramente ele tomou sobre si as nossas enfermidades, e as nossas dores levou sobre si.", VerseReference: "Isaías 53:4"},
		{VerseText: "Sara-me, Senhor, e sararei; salva-me, e serei salvo; porque tu és o meu louvor.", VerseReference: "Jeremias 17:14"},
		{VerseText: "Confessai as vossas culpas uns aos outros, e orai uns pelos outros, para que sareis. A oração feita por um justo pode muito em seus efeitos.", VerseReference: "Tiago 5:16"},
		{VerseText: "Enviou a sua palavra, e os sarou; e os livrou da sua destruição.", VerseReference: "Salmos 107:20"},
		{VerseText: "Bendiga o Senhor a minha alma, e não esqueça de nenhuma de suas bênçãos! É ele que perdoa todos os seus pecados e cura todas as suas doenças.", VerseReference: "Salmos 103:2-3"},
	},
}

// genericPool is the flattened dictionary, used for themes with no match.
var genericPool = func() []domain.VerseSuggestion {
	var pool []domain.VerseSuggestion
	for _, verses := range suggestionsByTheme {
		pool = append(pool, verses...)
	}
	return pool
}()

// SuggestionsForTheme returns a curated list for the theme. Matching is a
// case-insensitive substring check of the normalized theme against the known
// keys; with no match it returns a random pick of 5 from the generic pool,
// reshuffled on every call so a failing upstream never pins the UI to the
// same list.
func SuggestionsForTheme(theme string) []domain.VerseSuggestion {
	normalized := strings.ToLower(strings.TrimSpace(theme))

	if normalized != "" {
		for key, verses := range suggestionsByTheme {
			if strings.Contains(normalized, key) {
				out := make([]domain.VerseSuggestion, len(verses))
				copy(out, verses)
				return out
			}
		}
	}

	shuffled := make([]domain.VerseSuggestion, len(genericPool))
	copy(shuffled, genericPool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:suggestionCount]
}

// completeVerses are fully formed results for the verse-of-the-day path when
// the whole generation pipeline is down.
var completeVerses = []domain.VerseResult{
	{
		VerseText:      "O Senhor é o meu pastor, nada me faltará.",
		VerseReference: "Salmos 23:1",
		Explanation:    "Uma declaração de confiança absoluta na provisão, no cuidado e na proteção de Deus sobre nossas vidas em todos os momentos.",
		ImageURL:       "https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05?q=80&w=720&h=1280&auto=format&fit=crop",
	},
	{
		VerseText:      "Porque sou eu que conheço os planos que tenho para vocês, diz o Senhor, planos de fazê-los prosperar e não de causar dano, planos de dar a vocês esperança e um futuro.",
		VerseReference: "Jeremias 29:11",
		Explanation:    "Uma promessa poderosa de que Deus tem o controle do nosso destino e que Seus propósitos são sempre para o nosso bem e crescimento.",
		ImageURL:       "https://images.unsplash.com/photo-1507643179173-442727e34eac?q=80&w=720&h=1280&auto=format&fit=crop",
	},
	{
		VerseText:      "O amor é paciente, o amor é bondoso. Não inveja, não se vangloria, não se orgulha.",
		VerseReference: "1 Coríntios 13:4",
		Explanation:    "A definição divina do amor verdadeiro, que não se baseia em sentimentos passageiros, mas em atitudes de bondade e paciência.",
		ImageURL:       "https://images.unsplash.com/photo-1518173946687-a4c8892bbd9f?q=80&w=720&h=1280&auto=format&fit=crop",
	},
	{
		VerseText:      "Tudo posso naquele que me fortalece.",
		VerseReference: "Filipenses 4:13",
		Explanation:    "Um lembrete de que nossa força não vem de nós mesmos, mas da capacidade que Deus nos dá para enfrentar qualquer desafio.",
		ImageURL:       "https://images.unsplash.com/photo-1464822759023-fed622ff2c3b?q=80&w=720&h=1280&auto=format&fit=crop",
	},
	{
		VerseText:      "Deixo-lhes a paz; a minha paz lhes dou. Não a dou como o mundo a dá. Não se perturbem os seus corações, nem tenham medo.",
		VerseReference: "João 14:27",
		Explanation:    "Jesus oferece uma paz sobrenatural que independe das circunstâncias externas, acalmando nossos corações em meio às tempestades.",
		ImageURL:       "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?q=80&w=720&h=1280&auto=format&fit=crop",
	},
}

// RandomCompleteVerse returns one of the static fallback results with a
// fresh ID and current timestamp, ready to display and cache.
func RandomCompleteVerse() domain.VerseResult {
	verse := completeVerses[rand.Intn(len(completeVerses))]
	verse.ID = uuid.NewString()
	verse.CreatedAt = time.Now().UTC()
	return verse
}
