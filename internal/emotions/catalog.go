// Package emotions holds the static mood-meter catalog: one hundred named
// emotional states, twenty-five per quadrant, in a fixed order.
//
// The catalog is a compiled constant. There are no insertion, deletion or
// mutation operations; listing it is idempotent and deterministic. Entries
// are built through a constructor that derives the quadrant from the two
// axes, so the catalog cannot contain an entry whose quadrant disagrees with
// its (energy, pleasantness) pair.
package emotions

import "github.com/moodlog/mood-journal/models"

func red(id, korean, english string) models.Emotion {
	return newEmotion(id, korean, english, models.EnergyHigh, models.PleasantnessLow)
}

func yellow(id, korean, english string) models.Emotion {
	return newEmotion(id, korean, english, models.EnergyHigh, models.PleasantnessHigh)
}

func green(id, korean, english string) models.Emotion {
	return newEmotion(id, korean, english, models.EnergyLow, models.PleasantnessHigh)
}

func blue(id, korean, english string) models.Emotion {
	return newEmotion(id, korean, english, models.EnergyLow, models.PleasantnessLow)
}

func newEmotion(id, korean, english string, energy models.Energy, pleasantness models.Pleasantness) models.Emotion {
	return models.Emotion{
		ID:           id,
		Korean:       korean,
		English:      english,
		Quadrant:     models.DeriveQuadrant(energy, pleasantness),
		Energy:       energy,
		Pleasantness: pleasantness,
	}
}

// redEmotions: high energy, low pleasantness.
var redEmotions = []models.Emotion{
	red("enraged", "격분한", "Enraged"),
	red("panicked", "공황에 빠진", "Panicked"),
	red("stressed", "스트레스 받는", "Stressed"),
	red("jittery", "초조한", "Jittery"),
	red("shocked", "충격받은", "Shocked"),
	red("livid", "격노한", "Livid"),
	red("furious", "몹시화가 난", "Furious"),
	red("frustrated", "좌절한", "Frustrated"),
	red("tense", "신경이 날카로운", "Tense"),
	red("stunned", "망연자실한", "Stunned"),
	red("fuming", "화가 치밀어오른", "Fuming"),
	red("frightened", "겁먹은", "Frightened"),
	red("angry", "화난", "Angry"),
	red("nervous", "초조한", "Nervous"),
	red("restless", "안절부절못하는", "Restless"),
	red("anxious", "불안한", "Anxious"),
	red("apprehensive", "우려하는", "Apprehensive"),
	red("worried", "근심하는", "Worried"),
	red("irritated", "짜증나는", "Irritated"),
	red("annoyed", "거슬리는", "Annoyed"),
	red("repulsed", "불쾌한", "Repulsed"),
	red("troubled", "곤치아픈", "Troubled"),
	red("concerned", "염려하는", "Concerned"),
	red("uneasy", "마음이 불편한", "Uneasy"),
	red("peeved", "안달은", "Peeved"),
}

// yellowEmotions: high energy, high pleasantness.
var yellowEmotions = []models.Emotion{
	yellow("surprised", "놀란", "Surprised"),
	yellow("upbeat", "긍정적인", "Upbeat"),
	yellow("festive", "흥겨운", "Festive"),
	yellow("exhilarated", "아주 신나는", "Exhilarated"),
	yellow("ecstatic", "황홀한", "Ecstatic"),
	yellow("hyper", "들뜬", "Hyper"),
	yellow("cheerful", "쾌활한", "Cheerful"),
	yellow("motivated", "동기부여된", "Motivated"),
	yellow("inspired", "영감을 받은", "Inspired"),
	yellow("elated", "의기양양한", "Elated"),
	yellow("energized", "기운이 넘치는", "Energized"),
	yellow("lively", "활발한", "Lively"),
	yellow("excited", "흥분한", "Excited"),
	yellow("optimistic", "낙관적인", "Optimistic"),
	yellow("enthusiastic", "열광하는", "Enthusiastic"),
	yellow("pleased", "만족스러운", "Pleased"),
	yellow("focused", "집중하는", "Focused"),
	yellow("happy", "행복한", "Happy"),
	yellow("proud", "자랑스러운", "Proud"),
	yellow("thrilled", "짜릿한", "Thrilled"),
	yellow("pleasant", "유쾌한", "Pleasant"),
	yellow("joyful", "기쁜", "Joyful"),
	yellow("hopeful", "희망찬", "Hopeful"),
	yellow("playful", "재미있는", "Playful"),
	yellow("blissful", "더없이 행복한", "Blissful"),
}

// greenEmotions: low energy, high pleasantness.
var greenEmotions = []models.Emotion{
	green("atEase", "숨겨진", "At Ease"),
	green("easygoing", "태연한", "Easygoing"),
	green("content", "자족하는", "Content"),
	green("loving", "다정한", "Loving"),
	green("fulfilled", "충만한", "Fulfilled"),
	green("calm", "평온한", "Calm"),
	green("secure", "안전한", "Secure"),
	green("satisfied", "만족스러운", "Satisfied"),
	green("grateful", "감사하는", "Grateful"),
	green("touched", "감격적인", "Touched"),
	green("relaxed", "여유로운", "Relaxed"),
	green("chill", "차분한", "Chill"),
	green("restful", "편안한", "Restful"),
	green("blessed", "축복받은", "Blessed"),
	green("balanced", "안정적인", "Balanced"),
	green("mellow", "하가로운", "Mellow"),
	green("thoughtful", "생각이 깊긴", "Thoughtful"),
	green("peaceful", "평화로운", "Peaceful"),
	green("comfortable", "편한", "Comfortable"),
	green("carefree", "근심 걱정 없는", "Carefree"),
	green("sleepy", "나른한", "Sleepy"),
	green("complacent", "호무한", "Complacent"),
	green("tranquil", "고요한", "Tranquil"),
	green("cozy", "아늑한", "Cozy"),
	green("serene", "안온한", "Serene"),
}

// blueEmotions: low energy, low pleasantness.
var blueEmotions = []models.Emotion{
	blue("disgusted", "역겨운", "Disgusted"),
	blue("glum", "침울한", "Glum"),
	blue("disappointed", "실망스러운", "Disappointed"),
	blue("down", "의욕 없는", "Down"),
	blue("apathetic", "냉담한", "Apathetic"),
	blue("pessimistic", "비관적인", "Pessimistic"),
	blue("morose", "시무룩한", "Morose"),
	blue("discouraged", "낙담한", "Discouraged"),
	blue("sad", "슬픈", "Sad"),
	blue("bored", "지루한", "Bored"),
	blue("alienated", "소외된", "Alienated"),
	blue("miserable", "비참한", "Miserable"),
	blue("lonely", "쓸쓸한", "Lonely"),
	blue("disheartened", "기죽은", "Disheartened"),
	blue("tired", "피곤한", "Tired"),
	blue("despondent", "의기소침한", "Despondent"),
	blue("depressed", "우울한", "Depressed"),
	blue("sullen", "뚱한", "Sullen"),
	blue("exhausted", "기진맥진한", "Exhausted"),
	blue("fatigued", "지친", "Fatigued"),
	blue("despairing", "절망한", "Despairing"),
	blue("hopeless", "가망 없는", "Hopeless"),
	blue("desolate", "고독한", "Desolate"),
	blue("spent", "소모된", "Spent"),
	blue("drained", "진이 빠진", "Drained"),
}
